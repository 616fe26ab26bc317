package excel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/domain/repository"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newDataStore(t *testing.T) (*excel.DataStore, string) {
	t.Helper()
	dir := t.TempDir()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return excel.New(dir, log), dir
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureFiles
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureFiles_CriaAsOitoPlanilhas(t *testing.T) {
	ds, dir := newDataStore(t)
	require.NoError(t, ds.EnsureFiles())

	for _, file := range []string{
		excel.FileTenants, excel.FileProperties, excel.FileContracts, excel.FileAgencies,
		excel.FilePayments, excel.FileExtracts, excel.FileGuarantors, excel.FileBailInsurances,
	} {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, "planilha %s deve existir", file)
	}
}

func TestEnsureFiles_NaoSobrescreveDados(t *testing.T) {
	ds, _ := newDataStore(t)
	issues := ds.SaveAll(repository.Snapshot{
		Tenants: []*entity.Tenant{{ID: "t1", Name: "Conceição"}},
	})
	require.Empty(t, issues)

	require.NoError(t, ds.EnsureFiles())

	tenants, err := ds.LoadTenants()
	require.NoError(t, err)
	require.Len(t, tenants, 1, "EnsureFiles não pode zerar planilha existente")
	assert.Equal(t, "Conceição", tenants[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Leitura
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ArquivoInexistenteDevolveVazio(t *testing.T) {
	ds, _ := newDataStore(t)
	tenants, err := ds.LoadTenants()
	require.NoError(t, err)
	assert.Empty(t, tenants, "diretório novo equivale a sistema vazio")
}

func TestSaveAllLoad_RoundTripDeContrato(t *testing.T) {
	ds, _ := newDataStore(t)
	snap := repository.Snapshot{
		Contracts: []*entity.Contract{{
			ID:            "c1",
			Guarantee:     entity.GuaranteeBailInsurance,
			GuaranteeID:   "b1",
			RentAmount:    dec("1234.56"),
			RoomName:      "Sala São José",
			PropertyID:    "p1",
			TenantID:      "t1",
			RealEstateID:  "a1",
			Acting:        true,
			RentalDeposit: decimal.Zero,
		}},
		BailInsurances: []*entity.BailInsurance{{
			ID: "b1", Value: dec("30000"), InsuranceCompany: "Seguradora Horizonte", Validity: "31/12/2026",
		}},
	}
	require.Empty(t, ds.SaveAll(snap))

	contracts, err := ds.LoadContracts()
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	c := contracts[0]
	assert.Equal(t, entity.GuaranteeBailInsurance, c.Guarantee)
	assert.Equal(t, "b1", c.GuaranteeID)
	assert.True(t, c.RentAmount.Equal(dec("1234.56")))
	assert.True(t, c.Acting)
	assert.Equal(t, "Sala São José", c.RoomName, "acentos sobrevivem ao round-trip")

	insurances, err := ds.LoadBailInsurances()
	require.NoError(t, err)
	require.Len(t, insurances, 1)
	assert.Equal(t, "31/12/2026", insurances[0].Validity)
	assert.True(t, insurances[0].Value.Equal(dec("30000")))
}

func TestLoadGuarantors_DescartaLinhaSemDocumento(t *testing.T) {
	ds, _ := newDataStore(t)
	snap := repository.Snapshot{
		Guarantors: []*entity.Guarantor{
			{ID: "g1", Name: "Com CPF", CPF: "111"},
			{ID: "g2", Name: "Sem documento"},
		},
	}
	require.Empty(t, ds.SaveAll(snap))

	guarantors, err := ds.LoadGuarantors()
	require.NoError(t, err)
	require.Len(t, guarantors, 1, "fiador sem documento viola o invariante e é descartado")
	assert.Equal(t, "g1", guarantors[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportação de análise
// ──────────────────────────────────────────────────────────────────────────────

func TestIncomeReportName(t *testing.T) {
	rep := &analysis.Report{
		Start: analysis.Period{Year: 2024, Month: 3},
		End:   analysis.Period{Year: 2024, Month: 12},
	}
	assert.Equal(t, "analise_imposto_renda_03-2024_a_12-2024.xlsx", excel.IncomeReportName(rep))
}

func TestWriteIncomeReport_GravaArquivo(t *testing.T) {
	dir := t.TempDir()
	rep := &analysis.Report{
		Start: analysis.Period{Year: 2024, Month: 3},
		End:   analysis.Period{Year: 2024, Month: 3},
		Rows: []analysis.Row{{
			Period:     analysis.Period{Year: 2024, Month: 3},
			RefLabel:   "03/2024",
			TenantName: "João da Silva",
			Rent:       dec("1000"),
			Commission: dec("100"),
			NetIncome:  dec("900"),
		}},
	}

	path, err := excel.WriteIncomeReport(dir, rep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "analise_imposto_renda_03-2024_a_03-2024.xlsx"), path)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestWriteIncomeReport_VazioEhRecusado(t *testing.T) {
	rep := &analysis.Report{
		Start: analysis.Period{Year: 2024, Month: 3},
		End:   analysis.Period{Year: 2024, Month: 3},
	}
	_, err := excel.WriteIncomeReport(t.TempDir(), rep)
	assert.Error(t, err, "relatório sem linhas não gera arquivo")
}
