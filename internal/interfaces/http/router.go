package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khata-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *ledger.CustomerUseCase
	TransactionUC *ledger.TransactionUseCase
	StatementUC   *ledger.StatementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	// "/overdue" antes de "/:id" para que no lo capture el parámetro
	customers.Get("/overdue", customerHandler.Overdue)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	customers.Get("/:id/transactions", transactionHandler.ListByCustomer)
	customers.Post("/:id/transactions", transactionHandler.CreateCredit)
	customers.Post("/:id/payments", transactionHandler.CreatePayment)
	api.Get("/transactions", transactionHandler.ListAll)

	statementHandler := NewStatementHandler(deps.StatementUC)
	customers.Get("/:id/statement", statementHandler.Get)
}
