package dto

import "github.com/shopspring/decimal"

// CreateCreditRequest body para POST /api/customers/:id/transactions (fiado).
// Date en ISO-8601 ("2006-01-02" o RFC3339); vacío = hoy.
type CreateCreditRequest struct {
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     string          `json:"date,omitempty"`
}

// CreatePaymentRequest body para POST /api/customers/:id/payments (abono).
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date,omitempty"`
}

// TransactionResponse asiento del libro en respuestas.
// Quantity/Price aplican a credit; Amount a payment.
type TransactionResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Date       string          `json:"date"` // ISO-8601
	Type       string          `json:"type"` // credit, payment
	Amount     decimal.Decimal `json:"amount"`
}
