package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/khata-api/internal/application/dto"
	"github.com/jhoicas/khata-api/internal/domain"
	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

// TransactionUseCase casos de uso de asientos del libro: fiados y abonos.
// La validación ocurre aquí, antes de tocar el almacén.
type TransactionUseCase struct {
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(customers repository.CustomerRepository, transactions repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{customers: customers, transactions: transactions}
}

// CreateCredit registra un fiado (mercancía entregada a crédito).
func (uc *TransactionUseCase) CreateCredit(customerID string, in dto.CreateCreditRequest) (*dto.TransactionResponse, error) {
	if in.ItemName == "" || in.Quantity < 1 || in.Price.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseRequestDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCustomer(customerID); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ItemName:   in.ItemName,
		Quantity:   in.Quantity,
		Price:      in.Price,
		Date:       date,
		Type:       entity.TransactionTypeCredit,
		Amount:     decimal.Zero,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// CreatePayment registra un abono del cliente.
func (uc *TransactionUseCase) CreatePayment(customerID string, in dto.CreatePaymentRequest) (*dto.TransactionResponse, error) {
	if in.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseRequestDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCustomer(customerID); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ItemName:   entity.PaymentItemName,
		Quantity:   1,
		Price:      decimal.Zero,
		Date:       date,
		Type:       entity.TransactionTypePayment,
		Amount:     in.Amount,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// ListByCustomer devuelve las transacciones de un cliente, fecha descendente.
func (uc *TransactionUseCase) ListByCustomer(customerID string) ([]dto.TransactionResponse, error) {
	if err := uc.requireCustomer(customerID); err != nil {
		return nil, err
	}
	txs, err := uc.transactions.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	return toTransactionResponses(txs), nil
}

// ListAll devuelve todas las transacciones del libro, fecha descendente.
func (uc *TransactionUseCase) ListAll() ([]dto.TransactionResponse, error) {
	txs, err := uc.transactions.ListAll()
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	return toTransactionResponses(txs), nil
}

// requireCustomer verifica que el cliente exista. El almacén no tiene
// integridad referencial, así que la verificación vive en el servicio.
func (uc *TransactionUseCase) requireCustomer(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// parseRequestDate acepta "2006-01-02" o RFC3339; vacío = ahora.
func parseRequestDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func sortTransactionsDesc(txs []*entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         tx.ID,
		CustomerID: tx.CustomerID,
		ItemName:   tx.ItemName,
		Quantity:   tx.Quantity,
		Price:      tx.Price,
		Date:       tx.Date.UTC().Format(time.RFC3339),
		Type:       tx.Type,
		Amount:     tx.Amount,
	}
}

func toTransactionResponses(txs []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out
}
