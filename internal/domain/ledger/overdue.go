package ledger

import (
	"time"

	"github.com/jhoicas/khata-api/internal/domain/entity"
)

// DefaultOverdueAfter umbral de mora: el fiado más antiguo supera los 30 días.
const DefaultOverdueAfter = 30 * 24 * time.Hour

// IsOverdue indica si un cliente está en mora: saldo negativo y su fiado
// más antiguo tiene más de `after` respecto a `now`.
// Un cliente con saldo negativo pero sin fiados (inconsistencia de datos)
// nunca se marca en mora.
func IsOverdue(txs []*entity.Transaction, now time.Time, after time.Duration) bool {
	if Balance(txs).Sign() >= 0 {
		return false
	}
	oldest, ok := oldestCredit(txs)
	if !ok {
		return false
	}
	return now.Sub(oldest) > after
}

// oldestCredit devuelve la fecha del fiado más antiguo.
func oldestCredit(txs []*entity.Transaction) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, tx := range txs {
		if tx.Type != entity.TransactionTypeCredit {
			continue
		}
		if !found || tx.Date.Before(oldest) {
			oldest = tx.Date
			found = true
		}
	}
	return oldest, found
}
