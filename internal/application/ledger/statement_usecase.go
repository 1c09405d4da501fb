package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khata-api/internal/domain"
	"github.com/jhoicas/khata-api/internal/domain/entity"
	domledger "github.com/jhoicas/khata-api/internal/domain/ledger"
	"github.com/jhoicas/khata-api/internal/domain/repository"
)

// StatementPDFGenerator puerto para la representación en PDF del estado
// de cuenta de un cliente.
type StatementPDFGenerator interface {
	GenerateStatementPDF(customer *entity.Customer, txs []*entity.Transaction, balance decimal.Decimal, generatedAt time.Time) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta (PDF) de un cliente.
type StatementUseCase struct {
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
	pdf          StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(customers repository.CustomerRepository, transactions repository.TransactionRepository, pdf StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{customers: customers, transactions: transactions, pdf: pdf}
}

// Statement devuelve los bytes del PDF con las transacciones del cliente
// (fecha descendente) y su saldo.
func (uc *StatementUseCase) Statement(customerID string) ([]byte, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	txs, err := uc.transactions.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	return uc.pdf.GenerateStatementPDF(customer, txs, domledger.Balance(txs), time.Now())
}
