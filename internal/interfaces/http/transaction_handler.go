package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khata-api/internal/application/dto"
	"github.com/jhoicas/khata-api/internal/application/ledger"
	"github.com/jhoicas/khata-api/internal/domain"
)

// TransactionHandler maneja las peticiones HTTP de fiados y abonos.
type TransactionHandler struct {
	uc *ledger.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// CreateCredit POST /api/customers/:id/transactions
func (h *TransactionHandler) CreateCredit(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.CreateCredit(c.Params("id"), in)
	if err != nil {
		return mapTransactionError(c, err, "item_name, quantity >= 1 y price >= 0 son requeridos")
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// CreatePayment POST /api/customers/:id/payments
func (h *TransactionHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.CreatePayment(c.Params("id"), in)
	if err != nil {
		return mapTransactionError(c, err, "amount debe ser mayor que cero")
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// ListByCustomer GET /api/customers/:id/transactions
func (h *TransactionHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Params("id"))
	if err != nil {
		return mapTransactionError(c, err, "id requerido")
	}
	return c.JSON(list)
}

// ListAll GET /api/transactions
func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

func mapTransactionError(c *fiber.Ctx, err error, validationMsg string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMsg})
	}
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return internalError(c, err)
}
