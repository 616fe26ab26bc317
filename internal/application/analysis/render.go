package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Apeirom/rental-manager/pkg/brformat"
)

// WriteTable imprime o relatório agrupado por período de referência, uma
// tabela por mês, com valores no formato monetário brasileiro.
func (r *Report) WriteTable(w io.Writer) error {
	if len(r.Rows) == 0 {
		_, err := fmt.Fprintf(w, "Nenhum dado encontrado entre %s e %s.\n", r.Start.Label(), r.End.Label())
		return err
	}

	for _, g := range r.Groups() {
		if _, err := fmt.Fprintf(w, "\n=== %s ===\n", g.Label); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Inquilino\tDocumento\tImóvel\tAluguel\tIPTU\tÁgua\tAcordo\tComissão\tRenda líquida")
		for _, row := range g.Rows {
			doc := "N/D"
			if row.Document != "" {
				doc = row.DocumentKind + " " + row.Document
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				row.TenantName,
				doc,
				row.Unit,
				brformat.Money(row.Rent),
				brformat.Money(row.IPTU),
				brformat.Money(row.Water),
				brformat.Money(row.Agreement),
				brformat.Money(row.Commission),
				brformat.Money(row.NetIncome),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
