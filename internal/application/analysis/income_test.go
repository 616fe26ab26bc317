package analysis_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newScenario monta um contrato vigente com comissão de 10% e devolve o store
// e o id do contrato.
func newScenario(t *testing.T) (*rental.Store, string) {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store, err := rental.NewStore(excel.New(t.TempDir(), log), log)
	require.NoError(t, err)

	propertyID := store.AddProperty("Edifício Central", "Dona Maria", "Rua A, 100", 4)
	tenantID := store.AddTenant("João da Silva", "111.222.333-44", "")
	agencyID := store.AddAgency("Imob Ltda", "", dec("0.1"), "", "")
	contractID, err := store.AddContract(entity.GuaranteeDeposit, decimal.Zero, dec("1000"),
		"Sala 101", propertyID, tenantID, agencyID, "", "")
	require.NoError(t, err)
	return store, contractID
}

func period(month, year int) analysis.Period {
	return analysis.Period{Year: year, Month: month}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética do relatório
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildIncomeReport_Aritmetica(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", dec("120"), dec("80"), dec("200"))

	engine := analysis.NewEngine(store)
	report, err := engine.BuildIncomeReport(period(3, 2024), period(3, 2024))
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, "03/2024", row.RefLabel)
	assert.Equal(t, "João da Silva", row.TenantName)
	assert.Equal(t, "CPF", row.DocumentKind)
	assert.Equal(t, "Edifício Central - Sala 101", row.Unit)
	// Base = aluguel + acordo = 1200; comissão de 10% = 120; líquido = 1080
	assert.True(t, row.Commission.Equal(dec("120")), "comissão deve ser 10%% de 1200, obtido %s", row.Commission)
	assert.True(t, row.NetIncome.Equal(dec("1080")), "renda líquida deve ser 1200*0,9, obtido %s", row.NetIncome)
	assert.True(t, row.IPTU.Equal(dec("120")))
	assert.True(t, row.Water.Equal(dec("80")))
}

func TestBuildIncomeReport_SemAcordo(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 5, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)

	report, err := analysis.NewEngine(store).BuildIncomeReport(period(5, 2024), period(5, 2024))
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].Commission.Equal(dec("100")))
	assert.True(t, report.Rows[0].NetIncome.Equal(dec("900")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de intervalo e ordenação
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildIncomeReport_IntervaloInclusivoEOrdem(t *testing.T) {
	store, contractID := newScenario(t)
	// Inseridos fora de ordem cronológica, com um período fora do intervalo
	store.AddExtract(contractID, 7, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.AddExtract(contractID, 1, 2025, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)

	report, err := analysis.NewEngine(store).BuildIncomeReport(period(3, 2024), period(12, 2024))
	require.NoError(t, err)
	require.Len(t, report.Rows, 2, "01/2025 fica fora do intervalo")
	assert.Equal(t, "03/2024", report.Rows[0].RefLabel, "as bordas do intervalo são inclusivas")
	assert.Equal(t, "07/2024", report.Rows[1].RefLabel)
}

func TestBuildIncomeReport_IntervaloVazio(t *testing.T) {
	store, _ := newScenario(t)
	report, err := analysis.NewEngine(store).BuildIncomeReport(period(1, 2020), period(12, 2020))
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
}

func TestBuildIncomeReport_PeriodoInvalido(t *testing.T) {
	store, _ := newScenario(t)
	_, err := analysis.NewEngine(store).BuildIncomeReport(period(13, 2024), period(12, 2024))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Referências quebradas
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildIncomeReport_ReferenciaQuebradaAborta(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.RemoveContract(contractID)

	_, err := analysis.NewEngine(store).BuildIncomeReport(period(3, 2024), period(3, 2024))
	require.Error(t, err, "extrato órfão não pode gerar relatório parcial")
	assert.ErrorIs(t, err, domain.ErrBrokenReference)
}

func TestBuildIncomeReport_InquilinoRemovidoAborta(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.RemoveTenant(store.FindContractByID(contractID).TenantID)

	_, err := analysis.NewEngine(store).BuildIncomeReport(period(3, 2024), period(3, 2024))
	assert.ErrorIs(t, err, domain.ErrBrokenReference)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupamento e exibição
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_Groups(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.AddExtract(contractID, 3, 2024, dec("500"), "", decimal.Zero, decimal.Zero, decimal.Zero)
	store.AddExtract(contractID, 4, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)

	report, err := analysis.NewEngine(store).BuildIncomeReport(period(3, 2024), period(4, 2024))
	require.NoError(t, err)

	groups := report.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "03/2024", groups[0].Label)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "04/2024", groups[1].Label)
	assert.Len(t, groups[1].Rows, 1)
}

func TestWriteTable_Vazio(t *testing.T) {
	store, _ := newScenario(t)
	report, err := analysis.NewEngine(store).BuildIncomeReport(period(1, 2020), period(2, 2020))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.WriteTable(&sb))
	assert.Contains(t, sb.String(), "Nenhum dado encontrado entre 01/2020 e 02/2020")
}

func TestWriteTable_AgrupaPorPeriodo(t *testing.T) {
	store, contractID := newScenario(t)
	store.AddExtract(contractID, 3, 2024, dec("1000"), "", decimal.Zero, decimal.Zero, decimal.Zero)

	report, err := analysis.NewEngine(store).BuildIncomeReport(period(3, 2024), period(3, 2024))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.WriteTable(&sb))
	out := sb.String()
	assert.Contains(t, out, "=== 03/2024 ===")
	assert.Contains(t, out, "João da Silva")
	assert.Contains(t, out, "R$ 1.000,00")
}
