package sheetdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khata-api/internal/domain/entity"
)

// Codec de filas: mapeo bidireccional entre las filas posicionales de la
// planilla y las entidades tipadas. Una fila malformada se descarta (nil),
// nunca produce pánico ni una entidad a medio poblar.
//
// Contrato de columnas:
//
//	Customers:    ID | Name | Phone | Address | Type
//	Transactions: TransactionID | CustomerID | ItemName | Quantity | Price | Date | Type | Amount

// sheetEpoch época de los números de serie de fecha de las planillas
// (días desde 1899-12-30).
var sheetEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// cell devuelve la celda i recortada, o "" si la fila es corta.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// rowToCustomer convierte una fila en Customer. Devuelve nil si la fila no
// alcanza las 4 columnas mínimas o carece de ID.
func rowToCustomer(row []string) *entity.Customer {
	if len(row) < 4 {
		return nil
	}
	id := cell(row, 0)
	if id == "" {
		return nil
	}
	customerType := entity.CustomerTypeNormal
	if cell(row, 4) == entity.CustomerTypeArmy {
		customerType = entity.CustomerTypeArmy
	}
	return &entity.Customer{
		ID:      id,
		Name:    cell(row, 1),
		Phone:   cell(row, 2),
		Address: cell(row, 3),
		Type:    customerType,
	}
}

// rowToTransaction convierte una fila en Transaction; nil si está malformada.
//
// La discriminación payment/credit se decide por la celda Amount: si contiene
// un número parseable la fila es un abono, sin importar lo que diga la celda
// Type. En los datos crudos ambas celdas pueden contradecirse y Amount es la
// señal fiable.
func rowToTransaction(row []string) *entity.Transaction {
	if len(row) < 7 {
		return nil
	}
	id, customerID := cell(row, 0), cell(row, 1)
	if id == "" || customerID == "" {
		return nil
	}
	date, err := parseCellDate(cell(row, 5))
	if err != nil {
		return nil
	}

	if amountCell := cell(row, 7); amountCell != "" {
		if amount, err := decimal.NewFromString(amountCell); err == nil {
			itemName := cell(row, 2)
			if itemName == "" {
				itemName = entity.PaymentItemName
			}
			return &entity.Transaction{
				ID:         id,
				CustomerID: customerID,
				ItemName:   itemName,
				Quantity:   1,
				Price:      decimal.Zero,
				Date:       date,
				Type:       entity.TransactionTypePayment,
				Amount:     amount,
			}
		}
		// Amount presente pero no numérico: si tampoco es un credit válido,
		// la fila cae por las validaciones de abajo.
	}

	itemName := cell(row, 2)
	quantity, err := strconv.Atoi(cell(row, 3))
	if err != nil {
		return nil
	}
	price, err := decimal.NewFromString(cell(row, 4))
	if err != nil {
		return nil
	}
	if itemName == "" {
		return nil
	}
	return &entity.Transaction{
		ID:         id,
		CustomerID: customerID,
		ItemName:   itemName,
		Quantity:   quantity,
		Price:      price,
		Date:       date,
		Type:       entity.TransactionTypeCredit,
		Amount:     decimal.Zero,
	}
}

// customerToRow arma la fila posicional de un Customer.
func customerToRow(c *entity.Customer) []interface{} {
	return []interface{}{c.ID, c.Name, c.Phone, c.Address, c.Type}
}

// transactionToRow arma la fila posicional de una Transaction. Las celdas
// del tipo contrario quedan como cadena vacía.
func transactionToRow(tx *entity.Transaction) []interface{} {
	date := tx.Date.UTC().Format(time.RFC3339)
	if tx.Type == entity.TransactionTypePayment {
		return []interface{}{tx.ID, tx.CustomerID, tx.ItemName, "", "", date, tx.Type, tx.Amount.String()}
	}
	return []interface{}{tx.ID, tx.CustomerID, tx.ItemName, strconv.Itoa(tx.Quantity), tx.Price.String(), date, tx.Type, ""}
}

// parseCellDate normaliza una celda de fecha: acepta ISO-8601 (con o sin
// hora) o un número de serie de planilla (días desde 1899-12-30).
func parseCellDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	return sheetEpoch.Add(time.Duration(serial * 24 * float64(time.Hour))), nil
}
