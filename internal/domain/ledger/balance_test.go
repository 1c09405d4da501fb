package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/ledger"
)

func credit(qty int, price float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       "tx-credit",
		ItemName: "Arroz",
		Quantity: qty,
		Price:    decimal.NewFromFloat(price),
		Date:     date,
		Type:     entity.TransactionTypeCredit,
	}
}

func payment(amount float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       "tx-payment",
		ItemName: entity.PaymentItemName,
		Quantity: 1,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
		Type:     entity.TransactionTypePayment,
	}
}

func TestBalance_ListaVaciaEsCero(t *testing.T) {
	assert.True(t, ledger.Balance(nil).IsZero(),
		"el saldo de una lista vacía debe ser 0")
}

func TestBalance_CreditosRestanAbonosSuman(t *testing.T) {
	now := time.Now()
	txs := []*entity.Transaction{
		credit(2, 30, now),   // -60
		credit(1, 15.5, now), // -15.50
		payment(40, now),     // +40
	}

	got := ledger.Balance(txs)
	assert.True(t, decimal.NewFromFloat(-35.5).Equal(got),
		"saldo esperado -35.50, obtenido %s", got)
}

func TestBalance_IndependienteDelOrden(t *testing.T) {
	now := time.Now()
	a := []*entity.Transaction{credit(2, 30, now), payment(60, now), credit(3, 10, now)}
	b := []*entity.Transaction{payment(60, now), credit(3, 10, now), credit(2, 30, now)}

	assert.True(t, ledger.Balance(a).Equal(ledger.Balance(b)),
		"la suma es conmutativa: el orden no debe cambiar el saldo")
}

func TestBalance_TipoDesconocidoAportaCero(t *testing.T) {
	now := time.Now()
	txs := []*entity.Transaction{
		credit(2, 30, now),
		{ID: "tx-raro", Type: "refund", Amount: decimal.NewFromInt(999), Date: now},
	}

	assert.True(t, decimal.NewFromInt(-60).Equal(ledger.Balance(txs)),
		"una transacción de tipo desconocido no debe afectar el saldo")
}

// Escenario Aarav: fiado de 2x30 sin abonos → debe 60.
func TestBalance_EscenarioFiadoSinAbono(t *testing.T) {
	d := time.Now().AddDate(0, 0, -40)
	txs := []*entity.Transaction{credit(2, 30, d)}

	assert.True(t, decimal.NewFromInt(-60).Equal(ledger.Balance(txs)),
		"2 unidades a 30 fiadas deben dejar saldo -60")
}

// Escenario Aarav con abono completo: el abono de 60 deja el saldo en cero.
func TestBalance_AbonoCompletoDejaSaldoCero(t *testing.T) {
	txs := []*entity.Transaction{
		credit(2, 30, time.Now().AddDate(0, 0, -40)),
		payment(60, time.Now()),
	}

	assert.True(t, ledger.Balance(txs).IsZero(),
		"un abono por el total de la deuda debe dejar saldo 0")
}
