package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khata-api/internal/application/dto"
	"github.com/jhoicas/khata-api/internal/domain"
	"github.com/jhoicas/khata-api/internal/domain/entity"
)

func TestCreateCredit_RegistraFiado(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")

	got, err := uc.CreateCredit("c1", dto.CreateCreditRequest{
		ItemName: "Arroz",
		Quantity: 2,
		Price:    decimal.NewFromInt(30),
		Date:     "2024-01-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, entity.TransactionTypeCredit, got.Type)
	assert.True(t, got.Amount.IsZero(), "un fiado no lleva Amount")
	require.Len(t, s.txs, 1)
}

func TestCreateCredit_Validaciones(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")

	casos := []dto.CreateCreditRequest{
		{Quantity: 1, Price: decimal.NewFromInt(10)},                          // sin artículo
		{ItemName: "Arroz", Quantity: 0, Price: decimal.NewFromInt(10)},      // cantidad < 1
		{ItemName: "Arroz", Quantity: 1, Price: decimal.NewFromInt(-5)},      // precio negativo
		{ItemName: "Arroz", Quantity: 1, Price: decimal.NewFromInt(10), Date: "ayer"}, // fecha inválida
	}
	for _, in := range casos {
		_, err := uc.CreateCredit("c1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput,
			"debe rechazarse antes de cualquier llamada al almacén: %+v", in)
	}
	assert.Empty(t, s.txs, "ninguna validación fallida debe persistir nada")
}

func TestCreateCredit_ClienteInexistente(t *testing.T) {
	_, _, uc := newFixture()

	_, err := uc.CreateCredit("fantasma", dto.CreateCreditRequest{
		ItemName: "Arroz", Quantity: 1, Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound,
		"el almacén no tiene integridad referencial; el servicio la aporta")
}

func TestCreatePayment_RegistraAbono(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")

	got, err := uc.CreatePayment("c1", dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypePayment, got.Type)
	assert.Equal(t, entity.PaymentItemName, got.ItemName, "la descripción del abono es fija")
	assert.Equal(t, 1, got.Quantity)
	assert.True(t, got.Price.IsZero())
	require.Len(t, s.txs, 1)
}

func TestCreatePayment_MontoNoPositivo(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")

	for _, amount := range []int64{0, -10} {
		_, err := uc.CreatePayment("c1", dto.CreatePaymentRequest{Amount: decimal.NewFromInt(amount)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "abono de %d debe rechazarse", amount)
	}
	assert.Empty(t, s.txs)
}

func TestListByCustomer_SoloDelCliente(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")
	seedCustomer(s, "c2", "Meera")
	seedCredit(s, "c1", 1, 10, 2)
	seedCredit(s, "c2", 1, 99, 1)

	list, err := uc.ListByCustomer("c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].CustomerID)
}

func TestListAll_TodoElLibro(t *testing.T) {
	s, _, uc := newFixture()
	seedCustomer(s, "c1", "Aarav")
	seedCredit(s, "c1", 1, 10, 2)
	seedPayment(s, "c1", 5, 1)

	list, err := uc.ListAll()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
