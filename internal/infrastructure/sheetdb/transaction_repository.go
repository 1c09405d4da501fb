package sheetdb

import (
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre el libro XLSX.
// La hoja es un log de solo-agregar: no hay update ni delete individual.
type TransactionRepo struct {
	s *Store
}

// NewTransactionRepository construye el adaptador sobre el Store compartido.
func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

// Create agrega la fila de la transacción al final de la hoja.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	return r.s.update(func(f *excelize.File) error {
		return appendRow(f, r.s.transactionSheet, transactionToRow(tx))
	})
}

// ListByCustomer devuelve las transacciones cuyo CustomerID coincide.
func (r *TransactionRepo) ListByCustomer(customerID string) ([]*entity.Transaction, error) {
	return r.scan(func(tx *entity.Transaction) bool { return tx.CustomerID == customerID })
}

// ListAll devuelve todas las transacciones del libro.
func (r *TransactionRepo) ListAll() ([]*entity.Transaction, error) {
	return r.scan(func(*entity.Transaction) bool { return true })
}

// scan recorre la hoja aplicando el codec; las filas malformadas se
// descartan con un warning y la lectura continúa.
func (r *TransactionRepo) scan(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	err := r.s.view(func(f *excelize.File) error {
		rows, err := dataRows(f, r.s.transactionSheet)
		if err != nil {
			return err
		}
		for i, row := range rows {
			tx := rowToTransaction(row)
			if tx == nil {
				log.Warn().Str("hoja", r.s.transactionSheet).Int("fila", i+2).
					Msg("fila de transacción malformada descartada")
				continue
			}
			if keep(tx) {
				list = append(list, tx)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
