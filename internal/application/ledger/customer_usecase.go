package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/khata-api/internal/application/dto"
	"github.com/jhoicas/khata-api/internal/domain"
	"github.com/jhoicas/khata-api/internal/domain/entity"
	domledger "github.com/jhoicas/khata-api/internal/domain/ledger"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: alta, listados con saldo/mora
// derivados, detalle y borrado en cascada.
type CustomerUseCase struct {
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
	overdueAfter time.Duration
}

// NewCustomerUseCase construye el caso de uso. overdueAfter <= 0 usa el
// umbral por defecto de 30 días.
func NewCustomerUseCase(customers repository.CustomerRepository, transactions repository.TransactionRepository, overdueAfter time.Duration) *CustomerUseCase {
	if overdueAfter <= 0 {
		overdueAfter = domledger.DefaultOverdueAfter
	}
	return &CustomerUseCase{customers: customers, transactions: transactions, overdueAfter: overdueAfter}
}

// Create registra un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	customerType := in.Type
	switch customerType {
	case "":
		customerType = entity.CustomerTypeNormal
	case entity.CustomerTypeNormal, entity.CustomerTypeArmy:
	default:
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Type:    customerType,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List devuelve todos los clientes con saldo y bandera de mora derivados.
// Las transacciones se leen una sola vez y se agrupan por cliente.
func (uc *CustomerUseCase) List() ([]*dto.CustomerSummary, error) {
	return uc.list(false)
}

// Overdue devuelve solo los clientes en mora (saldo negativo con fiado
// de más de 30 días). Vista derivada, nunca persistida.
func (uc *CustomerUseCase) Overdue() ([]*dto.CustomerSummary, error) {
	return uc.list(true)
}

func (uc *CustomerUseCase) list(onlyOverdue bool) ([]*dto.CustomerSummary, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	all, err := uc.transactions.ListAll()
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[string][]*entity.Transaction, len(customers))
	for _, tx := range all {
		byCustomer[tx.CustomerID] = append(byCustomer[tx.CustomerID], tx)
	}

	now := time.Now()
	out := make([]*dto.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		txs := byCustomer[c.ID]
		overdue := domledger.IsOverdue(txs, now, uc.overdueAfter)
		if onlyOverdue && !overdue {
			continue
		}
		out = append(out, &dto.CustomerSummary{
			CustomerResponse: toCustomerResponse(c),
			Balance:          domledger.Balance(txs),
			Overdue:          overdue,
		})
	}
	return out, nil
}

// GetByID devuelve el detalle del cliente con sus transacciones ordenadas
// por fecha descendente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerDetail, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	txs, err := uc.transactions.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)

	return &dto.CustomerDetail{
		CustomerResponse: toCustomerResponse(customer),
		Balance:          domledger.Balance(txs),
		Overdue:          domledger.IsOverdue(txs, time.Now(), uc.overdueAfter),
		Transactions:     toTransactionResponses(txs),
	}, nil
}

// Delete elimina al cliente y todas sus transacciones (cascada).
// Repetir el borrado de un id inexistente es un no-op.
func (uc *CustomerUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.customers.DeleteCascade(id)
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Type:    c.Type,
	}
}
