package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, customer_id, item_name, quantity, price, date, type, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CustomerID, tx.ItemName, tx.Quantity, tx.Price, tx.Date, tx.Type, tx.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByCustomer devuelve las transacciones de un cliente.
func (r *TransactionRepo) ListByCustomer(customerID string) ([]*entity.Transaction, error) {
	query := `
		SELECT transaction_id, customer_id, item_name, quantity, price, date, type, amount
		FROM transactions WHERE customer_id = $1`
	return r.scan(query, customerID)
}

// ListAll devuelve todas las transacciones.
func (r *TransactionRepo) ListAll() ([]*entity.Transaction, error) {
	query := `
		SELECT transaction_id, customer_id, item_name, quantity, price, date, type, amount
		FROM transactions`
	return r.scan(query)
}

func (r *TransactionRepo) scan(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var tx entity.Transaction
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.ItemName, &tx.Quantity, &tx.Price, &tx.Date, &tx.Type, &tx.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
