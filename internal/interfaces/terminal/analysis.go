package terminal

import (
	"fmt"
	"path/filepath"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
)

// analysisMenu conduz o submenu de análises.
func (u *UI) analysisMenu() {
	fmt.Fprintln(u.out, "\n=== ANÁLISES ===")
	fmt.Fprintln(u.out, "1. Analisar extratos para imposto de renda")
	fmt.Fprintln(u.out, "2. Voltar ao menu principal")
	choice, ok := u.prompt("Escolha uma opção: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		u.incomeAnalysis()
	case "2":
		return
	default:
		fmt.Fprintln(u.out, "Opção inválida. Tente novamente.")
	}
}

// incomeAnalysis pergunta o intervalo, monta o relatório e exibe ou exporta.
func (u *UI) incomeAnalysis() {
	startYear, ok := u.promptInt("Ano de início: ", 0)
	if !ok {
		return
	}
	startMonth, ok := u.promptInt("Mês de início (1-12): ", 0)
	if !ok {
		return
	}
	endYear, ok := u.promptInt("Ano de fim: ", 0)
	if !ok {
		return
	}
	endMonth, ok := u.promptInt("Mês de fim (1-12): ", 0)
	if !ok {
		return
	}

	report, err := u.engine.BuildIncomeReport(
		analysis.Period{Year: startYear, Month: startMonth},
		analysis.Period{Year: endYear, Month: endMonth},
	)
	if err != nil {
		fmt.Fprintf(u.out, "Erro ao montar a análise: %v\n", err)
		return
	}

	fmt.Fprintln(u.out, "Como deseja exibir a análise?")
	fmt.Fprintln(u.out, "1. Exibir no terminal")
	fmt.Fprintln(u.out, "2. Salvar em arquivo Excel")
	choice, ok := u.prompt("Escolha uma opção: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		if err := report.WriteTable(u.out); err != nil {
			fmt.Fprintf(u.out, "Erro ao exibir a análise: %v\n", err)
		}
	case "2":
		if len(report.Rows) == 0 {
			fmt.Fprintln(u.out, "Nenhum dado para salvar.")
			return
		}
		path, err := excel.WriteIncomeReport(filepath.Join(u.docsDir, "analises"), report)
		if err != nil {
			fmt.Fprintf(u.out, "Erro ao salvar a análise: %v\n", err)
			return
		}
		fmt.Fprintf(u.out, "Análise salva em %s\n", path)
	default:
		fmt.Fprintln(u.out, "Opção inválida. Tente novamente.")
	}
}
