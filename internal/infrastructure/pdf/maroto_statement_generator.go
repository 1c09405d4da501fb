// Package pdf genera el estado de cuenta de un cliente del libro de fiado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estado de Cuenta  │  Cliente + fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Detalle | Cant | Precio | Movimiento         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO: deuda pendiente o anticipo a favor                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appledger "github.com/jhoicas/khata-api/internal/application/ledger"
	"github.com/jhoicas/khata-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebt    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ appledger.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa ledger.StatementPDFGenerator con Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes. Las transacciones
// llegan ya ordenadas por fecha descendente.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	customer *entity.Customer,
	txs []*entity.Transaction,
	balance decimal.Decimal,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(customer, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range transactionRows(txs) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow(balance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y cliente + fecha de emisión (der).
func headerRow(customer *entity.Customer, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de fiado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(customer.Address, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Emitido: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Detalle", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Movimiento", 2, align.Right),
	)
}

// transactionRows: una fila por asiento. Los fiados restan (rojo), los
// abonos suman.
func transactionRows(txs []*entity.Transaction) []core.Row {
	result := make([]core.Row, 0, len(txs))
	for _, tx := range txs {
		movement, movementColor := formatMovement(tx)
		quantity, price := "", ""
		if tx.Type == entity.TransactionTypeCredit {
			quantity = fmt.Sprintf("%d", tx.Quantity)
			price = tx.Price.StringFixed(2)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				tx.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				tx.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				quantity,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				price,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				movement,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: movementColor},
			)),
		))
	}
	return result
}

// formatMovement devuelve el efecto con signo de un asiento sobre el saldo.
func formatMovement(tx *entity.Transaction) (string, *props.Color) {
	if tx.Type == entity.TransactionTypePayment {
		return "+" + tx.Amount.StringFixed(2), colorPrimary
	}
	total := tx.Price.Mul(decimal.NewFromInt(int64(tx.Quantity)))
	return "-" + total.StringFixed(2), colorDebt
}

// balanceRow: saldo final con leyenda según el signo.
func balanceRow(balance decimal.Decimal) core.Row {
	label := "Saldo a favor del cliente"
	color := colorPrimary
	if balance.Sign() < 0 {
		label = "Deuda pendiente"
		color = colorDebt
	}
	return row.New(12).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
		})),
		col.New(4).Add(text.New(balance.Abs().StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Color: color, Right: 1,
		})),
	)
}
