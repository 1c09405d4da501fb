package repository

import "github.com/jhoicas/khata-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	// DeleteCascade elimina al cliente y todas sus transacciones en una sola
	// operación de lote. Si no hay filas que coincidan es un no-op, no un error.
	DeleteCascade(id string) error
}
