package sheetdb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khata-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestRowToCustomer_IdaYVuelta(t *testing.T) {
	original := &entity.Customer{
		ID:      "c1",
		Name:    "Aarav Sharma",
		Phone:   "+91 9876543210",
		Address: "12 Main Bazaar",
		Type:    entity.CustomerTypeArmy,
	}

	row := customerToRow(original)
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = v.(string)
	}

	got := rowToCustomer(cells)
	require.NotNil(t, got, "una fila bien formada debe parsear")
	assert.Equal(t, original, got, "customerToRow→rowToCustomer debe ser identidad")
}

func TestRowToCustomer_FilaCortaEsNil(t *testing.T) {
	assert.Nil(t, rowToCustomer([]string{"c1", "Aarav", "123"}),
		"una fila con menos de 4 columnas debe descartarse")
	assert.Nil(t, rowToCustomer(nil))
}

func TestRowToCustomer_TelefonoOpcional(t *testing.T) {
	got := rowToCustomer([]string{"c1", "Aarav", "", "12 Main Bazaar"})
	require.NotNil(t, got)
	assert.Empty(t, got.Phone, "celda de teléfono vacía debe quedar vacía")
}

func TestRowToCustomer_TipoPorDefectoNormal(t *testing.T) {
	sinTipo := rowToCustomer([]string{"c1", "Aarav", "", "Bazaar"})
	require.NotNil(t, sinTipo)
	assert.Equal(t, entity.CustomerTypeNormal, sinTipo.Type,
		"sin quinta celda el tipo es normal")

	tipoRaro := rowToCustomer([]string{"c1", "Aarav", "", "Bazaar", "vip"})
	require.NotNil(t, tipoRaro)
	assert.Equal(t, entity.CustomerTypeNormal, tipoRaro.Type,
		"solo el literal 'army' cambia el tipo")

	army := rowToCustomer([]string{"c1", "Aarav", "", "Bazaar", "army"})
	require.NotNil(t, army)
	assert.Equal(t, entity.CustomerTypeArmy, army.Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func asCells(row []interface{}) []string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = v.(string)
	}
	return cells
}

func TestRowToTransaction_FiadoIdaYVuelta(t *testing.T) {
	original := &entity.Transaction{
		ID:         "t1",
		CustomerID: "c1",
		ItemName:   "Arroz",
		Quantity:   2,
		Price:      decimal.NewFromInt(30),
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:       entity.TransactionTypeCredit,
		Amount:     decimal.Zero,
	}

	got := rowToTransaction(asCells(transactionToRow(original)))
	require.NotNil(t, got)
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Quantity, got.Quantity)
	assert.True(t, original.Price.Equal(got.Price))
	assert.True(t, original.Date.Equal(got.Date))
	assert.Equal(t, entity.TransactionTypeCredit, got.Type)
	assert.True(t, got.Amount.IsZero(), "un fiado no lleva Amount")
}

func TestRowToTransaction_AbonoIdaYVuelta(t *testing.T) {
	original := &entity.Transaction{
		ID:         "t2",
		CustomerID: "c1",
		ItemName:   entity.PaymentItemName,
		Quantity:   1,
		Price:      decimal.Zero,
		Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Type:       entity.TransactionTypePayment,
		Amount:     decimal.NewFromFloat(60.50),
	}

	got := rowToTransaction(asCells(transactionToRow(original)))
	require.NotNil(t, got)
	assert.Equal(t, entity.TransactionTypePayment, got.Type)
	assert.Equal(t, 1, got.Quantity, "un abono normaliza quantity=1")
	assert.True(t, got.Price.IsZero(), "un abono normaliza price=0")
	assert.True(t, original.Amount.Equal(got.Amount))
}

// La celda Amount manda sobre la celda Type: en los datos crudos pueden
// contradecirse y Amount es la señal fiable.
func TestRowToTransaction_AmountNumericoGanaSobreType(t *testing.T) {
	row := []string{"t3", "c1", "", "", "", "2024-01-01", "credit", "75.00"}

	got := rowToTransaction(row)
	require.NotNil(t, got)
	assert.Equal(t, entity.TransactionTypePayment, got.Type,
		"Amount parseable implica abono aunque Type diga credit")
	assert.True(t, decimal.NewFromInt(75).Equal(got.Amount))
	assert.Equal(t, entity.PaymentItemName, got.ItemName,
		"un abono sin descripción usa la descripción fija")
}

func TestRowToTransaction_CantidadNoNumericaSeDescarta(t *testing.T) {
	row := []string{"t9", "c1", "Rice", "abc", "10", "2024-01-01", "credit", ""}

	assert.Nil(t, rowToTransaction(row),
		"cantidad no numérica en un fiado debe descartar la fila")
}

func TestRowToTransaction_TodoNoNumericoSeDescarta(t *testing.T) {
	row := []string{"t9", "c1", "Rice", "abc", "xyz", "2024-01-01", "credit", "n/a"}

	assert.Nil(t, rowToTransaction(row),
		"Amount y cantidad/precio no numéricos: la fila se descarta, no lanza")
}

func TestRowToTransaction_FiadoSinArticuloSeDescarta(t *testing.T) {
	row := []string{"t4", "c1", "", "2", "10", "2024-01-01", "credit", ""}

	assert.Nil(t, rowToTransaction(row), "un fiado exige ItemName")
}

func TestRowToTransaction_FilaCortaEsNil(t *testing.T) {
	assert.Nil(t, rowToTransaction([]string{"t1", "c1", "Arroz", "1", "10", "2024-01-01"}),
		"una fila con menos de 7 columnas debe descartarse")
}

func TestRowToTransaction_FechaInvalidaSeDescarta(t *testing.T) {
	row := []string{"t5", "c1", "Arroz", "1", "10", "no-es-fecha", "credit", ""}

	assert.Nil(t, rowToTransaction(row),
		"fecha no parseable descarta la fila, nunca falla la lectura completa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCellDate_ISOYSerial(t *testing.T) {
	iso, err := parseCellDate("2024-01-01")
	require.NoError(t, err)

	// 45292 = número de serie de planilla para 2024-01-01
	serial, err := parseCellDate("45292")
	require.NoError(t, err)

	assert.True(t, iso.Equal(serial),
		"el serial 45292 debe normalizar a la misma fecha que el ISO 2024-01-01")
}

func TestParseCellDate_RFC3339(t *testing.T) {
	got, err := parseCellDate("2024-03-05T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), got)
}
