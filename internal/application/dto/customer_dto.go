package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// Type acepta "normal" o "army"; vacío se registra como normal.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	Type    string `json:"type,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// CustomerSummary cliente con su saldo derivado, para listados.
// Balance negativo = debe; positivo = anticipo a favor.
type CustomerSummary struct {
	CustomerResponse
	Balance decimal.Decimal `json:"balance"`
	Overdue bool            `json:"overdue"`
}

// CustomerDetail cliente con transacciones (fecha descendente) y saldo,
// para GET /api/customers/:id.
type CustomerDetail struct {
	CustomerResponse
	Balance      decimal.Decimal       `json:"balance"`
	Overdue      bool                  `json:"overdue"`
	Transactions []TransactionResponse `json:"transactions"`
}
