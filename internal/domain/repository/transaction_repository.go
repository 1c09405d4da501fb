package repository

import "github.com/jhoicas/khata-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
// Las transacciones son inmutables: no hay update ni delete individual.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListByCustomer(customerID string) ([]*entity.Transaction, error)
	ListAll() ([]*entity.Transaction, error)
}
