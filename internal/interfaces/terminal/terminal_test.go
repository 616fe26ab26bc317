package terminal_test

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/internal/interfaces/terminal"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// runScript executa o menu com as linhas dadas como entrada e devolve a saída.
func runScript(t *testing.T, store *rental.Store, docsDir string, lines ...string) string {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out strings.Builder
	ui := terminal.New(store, analysis.NewEngine(store), log, docsDir, in, &out)
	ui.Run()
	return out.String()
}

func newStore(t *testing.T) *rental.Store {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store, err := rental.NewStore(excel.New(t.TempDir(), log), log)
	require.NoError(t, err)
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxos do menu
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_AdicionarInquilinoESair(t *testing.T) {
	store := newStore(t)
	out := runScript(t, store, t.TempDir(),
		"1",                // Adicionar Inquilino
		"Maria Aparecida",  // nome
		"111.222.333-44",   // cpf
		"",                 // cnpj
		"14",               // Salvar e Sair
	)

	assert.Contains(t, out, "Inquilino adicionado com sucesso!")
	assert.Contains(t, out, "Encerrando o sistema")

	tenants := store.Tenants()
	require.Len(t, tenants, 1)
	assert.Equal(t, "Maria Aparecida", tenants[0].Name)
}

func TestRun_OpcaoInvalida(t *testing.T) {
	store := newStore(t)
	out := runScript(t, store, t.TempDir(), "99", "14")
	assert.Contains(t, out, "Opção inválida.")
}

func TestRun_AdicionarContratoComCaucao(t *testing.T) {
	store := newStore(t)
	store.AddProperty("Edifício Central", "Dona Maria", "Rua A", 2)
	store.AddTenant("João da Silva", "111", "")
	store.AddAgency("Imob", "", dec("0.1"), "", "")

	out := runScript(t, store, t.TempDir(),
		"3",       // Adicionar Contrato
		"1",       // garantia: caução
		"800,00",  // valor da caução
		"1500,00", // aluguel
		"Sala 1",  // sala
		"1",       // imóvel nº 1
		"1",       // inquilino nº 1
		"1",       // imobiliária nº 1
		"",        // arquivo (opcional)
		"14",
	)

	assert.Contains(t, out, "Contrato adicionado com sucesso!")
	contracts := store.Contracts()
	require.Len(t, contracts, 1)
	assert.Equal(t, entity.GuaranteeDeposit, contracts[0].Guarantee)
	assert.True(t, contracts[0].RentalDeposit.Equal(dec("800")))
	assert.True(t, contracts[0].Acting)
}

func TestRun_AdicionarContratoCancelaSemGarantia(t *testing.T) {
	store := newStore(t)
	out := runScript(t, store, t.TempDir(),
		"3", // Adicionar Contrato
		"2", // garantia: fiador (nenhum cadastrado)
		"14",
	)
	assert.Contains(t, out, "Operação cancelada")
	assert.Empty(t, store.Contracts())
}

func TestRun_VisualizarDadosComFiltro(t *testing.T) {
	store := newStore(t)
	store.AddTenant("Sem Contrato", "", "")

	out := runScript(t, store, t.TempDir(),
		"9", // Visualizar Dados
		"1", // Inquilino
		"s", // só com contratos ativos
		"14",
	)
	assert.NotContains(t, out, "Sem Contrato", "inquilino sem contrato vigente fica fora do filtro")

	out = runScript(t, store, t.TempDir(),
		"9",
		"1",
		"n",
		"14",
	)
	assert.Contains(t, out, "Sem Contrato")
}

func TestRun_RemoverItem(t *testing.T) {
	store := newStore(t)
	store.AddTenant("Para Remover", "", "")

	out := runScript(t, store, t.TempDir(),
		"10", // Remover Item
		"1",  // Inquilino
		"1",  // primeiro da lista
		"14",
	)
	assert.Contains(t, out, "Inquilino removido com sucesso!")
	assert.Empty(t, store.Tenants())
}

// ──────────────────────────────────────────────────────────────────────────────
// Edição pelo registro de campos
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_EditarNomeDoInquilino(t *testing.T) {
	store := newStore(t)
	id := store.AddTenant("Nome Antigo", "111", "")

	out := runScript(t, store, t.TempDir(),
		"12",         // Editar Dados
		"1",          // Inquilino
		"1",          // primeiro da lista
		"1",          // atributo: name
		"Nome Novo",  // valor
		"14",
	)
	assert.Contains(t, out, "Atributo 'name' atualizado para: Nome Novo")
	assert.Equal(t, "Nome Novo", store.FindTenantByID(id).Name)
}

func TestRun_EditarComissaoInvalidaFalha(t *testing.T) {
	store := newStore(t)
	store.AddAgency("Imob", "", dec("0.1"), "", "")

	out := runScript(t, store, t.TempDir(),
		"12",  // Editar Dados
		"5",   // Imobiliária
		"1",   // primeira da lista
		"4",   // atributo: commission
		"abc", // valor inválido
		"14",
	)
	assert.Contains(t, out, "Erro ao atualizar o valor")
	assert.Equal(t, "0.1", store.Agencies()[0].Commission.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagamentos e recibos
// ──────────────────────────────────────────────────────────────────────────────

func newContractScenario(t *testing.T) (*rental.Store, string) {
	t.Helper()
	store := newStore(t)
	propertyID := store.AddProperty("Edifício Central", "Dona Maria", "Rua A", 2)
	tenantID := store.AddTenant("João da Silva", "111", "")
	agencyID := store.AddAgency("Imob", "", dec("0.1"), "11987654321", "")
	contractID, err := store.AddContract(entity.GuaranteeDeposit, decimal.Zero, dec("1000"),
		"Sala 1", propertyID, tenantID, agencyID, "", "")
	require.NoError(t, err)
	return store, contractID
}

func TestRun_AdicionarPagamentoComComprovante(t *testing.T) {
	store, _ := newContractScenario(t)

	out := runScript(t, store, t.TempDir(),
		"4",               // Adicionar Pagamento
		"1",               // contrato nº 1
		"recibos/r1.pdf",  // comprovante informado: não gera PDF
		"3",               // mês
		"2024",            // ano
		"14",
	)
	assert.Contains(t, out, "Pagamento adicionado com sucesso!")
	payments := store.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, "recibos/r1.pdf", payments[0].ReceiptPath)
}

func TestRun_AdicionarPagamentoGeraRecibo(t *testing.T) {
	store, _ := newContractScenario(t)
	docsDir := t.TempDir()

	out := runScript(t, store, docsDir,
		"4",    // Adicionar Pagamento
		"1",    // contrato nº 1
		"",     // sem comprovante: gera o recibo em PDF
		"3",    // mês
		"2024", // ano
		"14",
	)
	assert.Contains(t, out, "Recibo gerado em")

	payments := store.Payments()
	require.Len(t, payments, 1)
	require.NotEmpty(t, payments[0].ReceiptPath, "o caminho do recibo gerado fica no pagamento")
	_, err := os.Stat(payments[0].ReceiptPath)
	assert.NoError(t, err, "o PDF deve existir no diretório de documentos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Análises
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_AnaliseNoTerminal(t *testing.T) {
	store := newStore(t)
	propertyID := store.AddProperty("Edifício Central", "Dona Maria", "Rua A", 2)
	tenantID := store.AddTenant("João da Silva", "111", "")
	agencyID := store.AddAgency("Imob", "", dec("0.1"), "", "")
	contractID, err := store.AddContract(entity.GuaranteeDeposit, decimal.Zero, dec("1000"),
		"Sala 1", propertyID, tenantID, agencyID, "", "")
	require.NoError(t, err)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, dec("200"))

	out := runScript(t, store, t.TempDir(),
		"11",   // Análises
		"1",    // imposto de renda
		"2024", // ano início
		"3",    // mês início
		"2024", // ano fim
		"3",    // mês fim
		"1",    // exibir no terminal
		"14",
	)
	assert.Contains(t, out, "=== 03/2024 ===")
	assert.Contains(t, out, "João da Silva")
	assert.Contains(t, out, "R$ 120,00")
	assert.Contains(t, out, "R$ 1.080,00")
}
