// Package terminal implementa o menu interativo do sistema no console, a
// alternativa de uso sem o servidor web.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// UI é o estado do menu interativo.
type UI struct {
	store    *rental.Store
	engine   *analysis.Engine
	receipts *pdf.ReceiptGenerator
	log      *logger.Logger
	docsDir  string
	in       *bufio.Scanner
	out      io.Writer
}

// New constrói o menu sobre os leitores dados; em produção, stdin e stdout.
func New(store *rental.Store, engine *analysis.Engine, log *logger.Logger, docsDir string, in io.Reader, out io.Writer) *UI {
	return &UI{
		store:    store,
		engine:   engine,
		receipts: pdf.NewReceiptGenerator(),
		log:      log,
		docsDir:  docsDir,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run executa o laço principal até a opção de salvar e sair ou o fim da
// entrada.
func (u *UI) Run() {
	for {
		fmt.Fprintln(u.out, "\n===== MENU DO SISTEMA DE ALUGUEL =====")
		fmt.Fprintln(u.out, "1. Adicionar Inquilino         8. Adicionar Seguro Fiança")
		fmt.Fprintln(u.out, "2. Adicionar Imóvel            9. Visualizar Dados")
		fmt.Fprintln(u.out, "3. Adicionar Contrato          10. Remover Item")
		fmt.Fprintln(u.out, "4. Adicionar Pagamento         11. Análises")
		fmt.Fprintln(u.out, "5. Adicionar Imobiliária       12. Editar Dados")
		fmt.Fprintln(u.out, "6. Adicionar Extrato           13. Salvar")
		fmt.Fprintln(u.out, "7. Adicionar Fiador            14. Salvar e Sair")

		choice, ok := u.prompt("\nEscolha uma opção: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			u.addTenant()
		case "2":
			u.addProperty()
		case "3":
			u.addContract()
		case "4":
			u.addPayment()
		case "5":
			u.addAgency()
		case "6":
			u.addExtract()
		case "7":
			u.addGuarantor()
		case "8":
			u.addBailInsurance()
		case "9":
			u.viewData()
		case "10":
			u.removeItem()
		case "11":
			u.analysisMenu()
		case "12":
			u.editItem()
		case "13":
			u.save()
		case "14":
			u.save()
			fmt.Fprintln(u.out, "Dados salvos. Encerrando o sistema...")
			return
		default:
			fmt.Fprintln(u.out, "Opção inválida.")
		}
	}
}

// save grava as planilhas e relata arquivo a arquivo o que falhou.
func (u *UI) save() {
	issues := u.store.SaveAll()
	if len(issues) == 0 {
		fmt.Fprintln(u.out, "Dados salvos com sucesso.")
		return
	}
	fmt.Fprintln(u.out, "Algumas planilhas não foram salvas:")
	for _, i := range issues {
		u.log.Error().Str("file", i.File).Err(i.Err).Msg("falha ao salvar planilha")
		fmt.Fprintf(u.out, "  %s: %v\n", i.File, i.Err)
	}
}
