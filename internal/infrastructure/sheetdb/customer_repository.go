package sheetdb

import (
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre el libro XLSX.
type CustomerRepo struct {
	s *Store
}

// NewCustomerRepository construye el adaptador sobre el Store compartido.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

// Create agrega la fila del cliente al final de la hoja.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	return r.s.update(func(f *excelize.File) error {
		return appendRow(f, r.s.customerSheet, customerToRow(customer))
	})
}

// GetByID busca al cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var found *entity.Customer
	err := r.s.view(func(f *excelize.File) error {
		rows, err := dataRows(f, r.s.customerSheet)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if cell(row, 0) == id {
				found = rowToCustomer(row)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List devuelve todos los clientes. Las filas malformadas se descartan con
// un warning: un registro dañado nunca tumba la lectura completa.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	var list []*entity.Customer
	err := r.s.view(func(f *excelize.File) error {
		rows, err := dataRows(f, r.s.customerSheet)
		if err != nil {
			return err
		}
		for i, row := range rows {
			c := rowToCustomer(row)
			if c == nil {
				log.Warn().Str("hoja", r.s.customerSheet).Int("fila", i+2).
					Msg("fila de cliente malformada descartada")
				continue
			}
			list = append(list, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteCascade elimina la fila del cliente y todas las filas de transacción
// con su CustomerID, en una sola mutación del libro. Los índices se aplican
// en orden descendente (ver removeDataRows). Sin coincidencias es un no-op.
func (r *CustomerRepo) DeleteCascade(id string) error {
	return r.s.update(func(f *excelize.File) error {
		customerRows, err := dataRows(f, r.s.customerSheet)
		if err != nil {
			return err
		}
		var customerIdx []int
		for i, row := range customerRows {
			if cell(row, 0) == id {
				customerIdx = append(customerIdx, i)
			}
		}

		txRows, err := dataRows(f, r.s.transactionSheet)
		if err != nil {
			return err
		}
		var txIdx []int
		for i, row := range txRows {
			if cell(row, 1) == id {
				txIdx = append(txIdx, i)
			}
		}

		if len(customerIdx) == 0 && len(txIdx) == 0 {
			return nil
		}
		if err := removeDataRows(f, r.s.transactionSheet, txIdx); err != nil {
			return err
		}
		return removeDataRows(f, r.s.customerSheet, customerIdx)
	})
}
