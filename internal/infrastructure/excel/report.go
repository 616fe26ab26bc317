package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/domain"
)

var reportHeaders = []string{
	"data_ref", "inquilino", "documento", "tipo_documento", "imovel",
	"imobiliaria", "aluguel", "iptu", "agua", "acordo", "comissao", "renda_liquida",
}

// IncomeReportName devolve o nome do arquivo de exportação de uma análise,
// derivado do intervalo pedido.
func IncomeReportName(rep *analysis.Report) string {
	start := strings.ReplaceAll(rep.Start.Label(), "/", "-")
	end := strings.ReplaceAll(rep.End.Label(), "/", "-")
	return fmt.Sprintf("analise_imposto_renda_%s_a_%s.xlsx", start, end)
}

// WriteIncomeReport grava o relatório de renda em dir e devolve o caminho do
// arquivo gerado. Relatório vazio é recusado: não há o que salvar.
func WriteIncomeReport(dir string, rep *analysis.Report) (string, error) {
	if len(rep.Rows) == 0 {
		return "", fmt.Errorf("%w: nenhum dado no intervalo para salvar", domain.ErrValidation)
	}

	rows := make([][]any, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, []any{
			r.RefLabel,
			r.TenantName,
			r.Document,
			r.DocumentKind,
			r.Unit,
			r.AgencyName,
			r.Rent.InexactFloat64(),
			r.IPTU.InexactFloat64(),
			r.Water.InexactFloat64(),
			r.Agreement.InexactFloat64(),
			r.Commission.InexactFloat64(),
			r.NetIncome.InexactFloat64(),
		})
	}

	path := filepath.Join(dir, IncomeReportName(rep))
	if err := writeSheet(path, reportHeaders, rows); err != nil {
		return "", err
	}
	return path, nil
}
