package entity

// Tipos de cliente. "army" conserva un descuento/trato especial en el negocio;
// todo lo demás se registra como "normal".
const (
	CustomerTypeNormal = "normal"
	CustomerTypeArmy   = "army"
)

// Customer representa un cliente del libro de fiado (khata).
// El saldo no se almacena: se deriva de sus transacciones.
type Customer struct {
	ID      string
	Name    string
	Phone   string // opcional; vacío = no registrado
	Address string
	Type    string // normal, army
}
