package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/khata-api/internal/application/dto"
	"github.com/jhoicas/khata-api/internal/application/ledger"
	"github.com/jhoicas/khata-api/internal/domain"
)

// StatementHandler sirve el estado de cuenta en PDF.
type StatementHandler struct {
	uc *ledger.StatementUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *ledger.StatementUseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Get GET /api/customers/:id/statement
func (h *StatementHandler) Get(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Statement(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estado-de-cuenta.pdf"`)
	return c.Send(pdfBytes)
}
