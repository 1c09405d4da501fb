// Package sheetdb implementa el Ledger Store sobre un libro XLSX: una hoja
// por tabla, fila de encabezado en la posición 1 y filas posicionales según
// el contrato de columnas del libro de fiado. Es el sistema de registro
// original del negocio (planilla como base de datos).
package sheetdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/khata-api/internal/domain"
)

// Encabezados de cada hoja. El orden es el contrato posicional del codec.
var (
	customerHeaders    = []interface{}{"ID", "Name", "Phone", "Address", "Type"}
	transactionHeaders = []interface{}{"TransactionID", "CustomerID", "ItemName", "Quantity", "Price", "Date", "Type", "Amount"}
)

// Config ruta del libro y nombres de hoja.
type Config struct {
	Path             string
	CustomerSheet    string
	TransactionSheet string
}

// Store acceso serializado al libro XLSX. Cada operación abre el archivo,
// trabaja y (si muta) lo guarda completo, bajo un mutex: el formato no
// permite escrituras parciales concurrentes.
type Store struct {
	path             string
	customerSheet    string
	transactionSheet string
	mu               sync.Mutex
}

// New construye el Store. Hojas vacías usan "Customers" y "Transactions".
func New(cfg Config) *Store {
	if cfg.CustomerSheet == "" {
		cfg.CustomerSheet = "Customers"
	}
	if cfg.TransactionSheet == "" {
		cfg.TransactionSheet = "Transactions"
	}
	return &Store{
		path:             cfg.Path,
		customerSheet:    cfg.CustomerSheet,
		transactionSheet: cfg.TransactionSheet,
	}
}

// Ping verifica que el libro exista y sea legible (error de configuración
// si no: bloquea todas las operaciones desde el arranque).
func (s *Store) Ping() error {
	return s.view(func(*excelize.File) error { return nil })
}

// view abre el libro en modo lectura lógica y ejecuta fn.
func (s *Store) view(fn func(f *excelize.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

// update abre el libro, ejecuta fn y guarda si fn no falló.
func (s *Store) update(fn func(f *excelize.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("guardar libro %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir libro %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return f, nil
}

// dataRows devuelve las filas de datos de una hoja (sin el encabezado).
// Los índices devueltos por los llamadores son relativos a este slice.
func dataRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// appendRow agrega una fila al final de la hoja.
func appendRow(f *excelize.File, sheet string, cells []interface{}) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("escribir fila en %s: %w", sheet, err)
	}
	return nil
}

// removeDataRows elimina filas de datos por índice (base cero, sin contar el
// encabezado). Se aplica en orden descendente: cada borrado desplaza hacia
// arriba las filas siguientes, así que los índices mayores van primero para
// que cada uno siga apuntando a la fila correcta.
func removeDataRows(f *excelize.File, sheet string, indices []int) error {
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, idx := range indices {
		// +2: base 1 del libro más la fila de encabezado
		if err := f.RemoveRow(sheet, idx+2); err != nil {
			return fmt.Errorf("eliminar fila %d de %s: %w", idx+2, sheet, err)
		}
	}
	return nil
}

// Bootstrap crea el libro, las hojas y los encabezados si faltan. Es
// idempotente: se ejecuta como paso explícito de despliegue (cmd/migrate),
// nunca como efecto colateral del arranque.
func (s *Store) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f *excelize.File
	created := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		f = excelize.NewFile()
		created = true
	} else if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	} else {
		f, err = excelize.OpenFile(s.path)
		if err != nil {
			return fmt.Errorf("%w: abrir libro %s: %v", domain.ErrStoreUnavailable, s.path, err)
		}
	}
	defer f.Close()

	if err := ensureSheet(f, s.customerSheet, customerHeaders); err != nil {
		return err
	}
	if err := ensureSheet(f, s.transactionSheet, transactionHeaders); err != nil {
		return err
	}
	if created {
		// La hoja por defecto de un libro nuevo sobra si no es ninguna nuestra
		if def := "Sheet1"; def != s.customerSheet && def != s.transactionSheet {
			_ = f.DeleteSheet(def)
		}
		if err := f.SaveAs(s.path); err != nil {
			return fmt.Errorf("crear libro %s: %w", s.path, err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("guardar libro %s: %w", s.path, err)
	}
	return nil
}

// ensureSheet garantiza hoja y encabezado.
func ensureSheet(f *excelize.File, sheet string, headers []interface{}) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("hoja %s: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("crear hoja %s: %w", sheet, err)
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return fmt.Errorf("encabezado de %s: %w", sheet, err)
		}
	}
	return nil
}
