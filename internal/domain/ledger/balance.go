package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/khata-api/internal/domain/entity"
)

// Balance reduce las transacciones de un cliente a su saldo con signo.
// Saldo = -Σ(cantidad*precio de los credit) + Σ(monto de los payment).
// Negativo = el cliente debe; positivo = anticipo a favor del cliente.
// La suma es conmutativa, así que el orden de la lista no afecta el resultado.
func Balance(txs []*entity.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionTypeCredit:
			balance = balance.Sub(tx.Price.Mul(decimal.NewFromInt(int64(tx.Quantity))))
		case entity.TransactionTypePayment:
			balance = balance.Add(tx.Amount)
		}
		// Tipos desconocidos aportan cero: el codec ya los filtró, pero
		// el cálculo tampoco debe fallar si llegan hasta aquí.
	}
	return balance
}
