package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/khata-api/internal/domain/entity"
	"github.com/jhoicas/khata-api/internal/domain/ledger"
)

var evalTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestIsOverdue_FiadoViejoSinAbono(t *testing.T) {
	txs := []*entity.Transaction{credit(2, 30, evalTime.AddDate(0, 0, -40))}

	assert.True(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"saldo -60 con fiado de 40 días debe estar en mora (40 > 30)")
}

func TestIsOverdue_SaldoCeroNoEsMora(t *testing.T) {
	txs := []*entity.Transaction{
		credit(2, 30, evalTime.AddDate(0, 0, -40)),
		payment(60, evalTime),
	}

	assert.False(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"con la deuda saldada no hay mora aunque el fiado sea viejo")
}

func TestIsOverdue_FiadoRecienteNoEsMora(t *testing.T) {
	txs := []*entity.Transaction{credit(1, 100, evalTime.AddDate(0, 0, -10))}

	assert.False(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"un fiado de 10 días no supera el umbral de 30")
}

func TestIsOverdue_ExactamenteEnElUmbralNoEsMora(t *testing.T) {
	txs := []*entity.Transaction{credit(1, 100, evalTime.Add(-ledger.DefaultOverdueAfter))}

	assert.False(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"la mora exige superar el umbral, no igualarlo")
}

// Guardia contra datos inconsistentes: saldo negativo sin ningún fiado
// (solo un payment negativo no existe, pero un tipo desconocido sí puede
// dejar la lista sin credits). Nunca debe marcarse mora.
func TestIsOverdue_SaldoNegativoSinFiadosNoEsMora(t *testing.T) {
	txs := []*entity.Transaction{
		{ID: "p1", Type: entity.TransactionTypePayment, Amount: decimal.NewFromInt(-50), Date: evalTime.AddDate(0, 0, -90)},
	}

	assert.False(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"sin transacciones credit no puede haber mora, sin importar el saldo")
}

func TestIsOverdue_UsaElFiadoMasAntiguo(t *testing.T) {
	txs := []*entity.Transaction{
		credit(1, 10, evalTime.AddDate(0, 0, -5)),
		credit(1, 10, evalTime.AddDate(0, 0, -45)), // el más antiguo manda
		credit(1, 10, evalTime.AddDate(0, 0, -20)),
	}

	assert.True(t, ledger.IsOverdue(txs, evalTime, ledger.DefaultOverdueAfter),
		"la mora se evalúa sobre el fiado más antiguo, no el último")
}
