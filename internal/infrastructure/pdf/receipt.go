// Package pdf gera o recibo de aluguel em PDF (A4) a partir de um pagamento
// registrado.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Recibo de Aluguel  │  Referência MM/YYYY           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INQUILINO: nome + CPF/CNPJ                                 │
//	│  IMÓVEL: nome do imóvel + sala + endereço                   │
//	│  IMOBILIÁRIA: nome + telefone                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR: aluguel por extenso em moeda (R$)                   │
//	│  DATA DO PAGAMENTO                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/pkg/brformat"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 82, Blue: 54}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator monta recibos de aluguel usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator constrói o gerador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceipt gera o recibo de um pagamento e devolve os bytes do PDF.
// O chamador fornece as entidades já resolvidas; referências quebradas devem
// ser tratadas antes.
func (g *ReceiptGenerator) GenerateReceipt(
	payment *entity.Payment,
	contract *entity.Contract,
	tenant *entity.Tenant,
	property *entity.Property,
	agency *entity.Agency,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo de Aluguel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(payment))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRows(tenant, property, contract, agency)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(contract))
	m.AddRows(footerRow(payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ReceiptFileName devolve o nome canônico do arquivo de recibo.
func ReceiptFileName(payment *entity.Payment, tenant *entity.Tenant) string {
	return fmt.Sprintf("recibo_%02d-%d_%s.pdf", payment.MonthRef, payment.YearRef, tenant.ID)
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(payment *entity.Payment) core.Row {
	ref := fmt.Sprintf("Referência: %02d/%d", payment.MonthRef, payment.YearRef)
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RECIBO DE ALUGUEL", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(ref, props.Text{
				Size: 10, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func partiesRows(tenant *entity.Tenant, property *entity.Property, contract *entity.Contract, agency *entity.Agency) []core.Row {
	doc := "Documento: N/D"
	if tenant.Document() != "" {
		doc = fmt.Sprintf("%s: %s", tenant.DocumentKind(), tenant.Document())
	}
	unit := property.PropertyName
	if contract.RoomName != "" {
		unit += " - " + contract.RoomName
	}
	return []core.Row{
		labeledRow("Inquilino", tenant.Name+"  ("+doc+")"),
		labeledRow("Imóvel", unit),
		labeledRow("Endereço", property.Address),
		labeledRow("Imobiliária", agency.Name+"  "+brformat.Phone(agency.Phone)),
	}
}

func labeledRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 10})),
		col.New(9).Add(text.New(value, props.Text{Size: 10})),
	)
}

func amountRow(contract *entity.Contract) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Valor recebido: "+brformat.Money(contract.RentAmount), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func footerRow(payment *entity.Payment) core.Row {
	date := payment.PaymentDate
	if br, err := brformat.ISOToBR(payment.PaymentDate); err == nil {
		date = br
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Data do pagamento: "+date, props.Text{Size: 10, Top: 3, Color: colorGray}),
		),
	)
}
