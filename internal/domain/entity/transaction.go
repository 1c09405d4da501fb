package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro.
const (
	TransactionTypeCredit  = "credit"  // mercancía fiada: aumenta la deuda
	TransactionTypePayment = "payment" // abono recibido: reduce la deuda
)

// PaymentItemName descripción fija para las filas de abono.
const PaymentItemName = "Payment Received"

// Transaction representa un asiento inmutable del libro: un fiado (credit)
// o un abono (payment). Quantity/Price aplican solo a credit; Amount solo a payment.
type Transaction struct {
	ID         string
	CustomerID string
	ItemName   string
	Quantity   int
	Price      decimal.Decimal
	Date       time.Time
	Type       string // credit, payment
	Amount     decimal.Decimal
}
