package http_test

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
	apphttp "github.com/Apeirom/rental-manager/internal/interfaces/http"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta a aplicação completa sobre um diretório temporário.
func buildTestApp(t *testing.T) (*fiber.App, *rental.Store) {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store, err := rental.NewStore(excel.New(t.TempDir(), log), log)
	require.NoError(t, err)

	handler := apphttp.NewHandler(store, analysis.NewEngine(store), pdf.NewReceiptGenerator(), log, t.TempDir())
	app := fiber.New(fiber.Config{Views: apphttp.NewViewsEngine()})
	apphttp.Router(app, handler)
	return app, store
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func doRequest(t *testing.T, app *fiber.App, method, path string, form url.Values, htmx bool) (*nethttp.Response, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recarga parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantList_NavegacaoDiretaTrazLayout(t *testing.T) {
	app, store := buildTestApp(t)
	store.AddTenant("Maria Aparecida", "111.222.333-44", "")

	resp, body := doRequest(t, app, nethttp.MethodGet, "/tenants", nil, false)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<!DOCTYPE html>", "sem HX-Request a página vem completa")
	assert.Contains(t, body, "Maria Aparecida")
}

func TestTenantList_HTMXTrazSoOFragmento(t *testing.T) {
	app, store := buildTestApp(t)
	store.AddTenant("Maria Aparecida", "111.222.333-44", "")

	resp, body := doRequest(t, app, nethttp.MethodGet, "/tenants", nil, true)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "<!DOCTYPE html>", "com HX-Request só o miolo é devolvido")
	assert.Contains(t, body, "Maria Aparecida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastro e remoção via formulário
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantCreate_CadastraEListaAtualizada(t *testing.T) {
	app, store := buildTestApp(t)

	form := url.Values{"name": {"João Batista"}, "cpf": {"123.456.789-00"}}
	resp, body := doRequest(t, app, nethttp.MethodPost, "/tenants", form, true)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "João Batista")
	require.Len(t, store.Tenants(), 1)
}

func TestTenantCreate_SemNomeFalha(t *testing.T) {
	app, store := buildTestApp(t)

	form := url.Values{"cpf": {"123"}}
	resp, _ := doRequest(t, app, nethttp.MethodPost, "/tenants", form, true)

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.Tenants())
}

func TestGuarantorCreate_SemDocumentoFalha(t *testing.T) {
	app, store := buildTestApp(t)

	form := url.Values{"name": {"Fiador Sem Documento"}}
	resp, _ := doRequest(t, app, nethttp.MethodPost, "/guarantors", form, true)

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.Guarantors())
}

func TestTenantDelete(t *testing.T) {
	app, store := buildTestApp(t)
	id := store.AddTenant("Para Remover", "", "")

	resp, _ := doRequest(t, app, nethttp.MethodDelete, "/tenants/"+id, nil, true)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Empty(t, store.Tenants())
}

// ──────────────────────────────────────────────────────────────────────────────
// Imobiliárias
// ──────────────────────────────────────────────────────────────────────────────

func TestAgencyCreate_ComissaoEmFormatoBrasileiro(t *testing.T) {
	app, store := buildTestApp(t)

	form := url.Values{"name": {"Imob União"}, "commission": {"0,1"}}
	resp, _ := doRequest(t, app, nethttp.MethodPost, "/real_estates", form, true)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	agencies := store.Agencies()
	require.Len(t, agencies, 1)
	assert.Equal(t, "0.1", agencies[0].Commission.String())
}

func TestAgencyCreate_ComissaoForaDoIntervaloFalha(t *testing.T) {
	app, store := buildTestApp(t)

	form := url.Values{"name": {"Imob"}, "commission": {"1,5"}}
	resp, _ := doRequest(t, app, nethttp.MethodPost, "/real_estates", form, true)

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.Agencies())
}

// ──────────────────────────────────────────────────────────────────────────────
// Painel e salvamento
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ExibeContagens(t *testing.T) {
	app, store := buildTestApp(t)
	store.AddTenant("Um", "", "")
	store.AddTenant("Dois", "", "")

	resp, body := doRequest(t, app, nethttp.MethodGet, "/", nil, false)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Painel")
	assert.Contains(t, body, "<td>2</td>")
}

func TestSave_RelatorioDeSucesso(t *testing.T) {
	app, store := buildTestApp(t)
	store.AddTenant("Persistido", "", "")

	resp, body := doRequest(t, app, nethttp.MethodPost, "/salvar", nil, true)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dados salvos com sucesso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Análise
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalysisRun_Visualizar(t *testing.T) {
	app, store := buildTestApp(t)
	propertyID := store.AddProperty("Edifício Central", "Dona Maria", "Rua A", 2)
	tenantID := store.AddTenant("João da Silva", "111", "")
	agencyID := store.AddAgency("Imob", "", decimalFromString(t, "0.1"), "", "")
	contractForm := url.Values{
		"guarantee":      {"Caução"},
		"rental_deposit": {"0"},
		"rent_amount":    {"1000,00"},
		"room_name":      {"Sala 1"},
		"property_id":    {propertyID},
		"tenant_id":      {tenantID},
		"real_estate_id": {agencyID},
	}
	resp, _ := doRequest(t, app, nethttp.MethodPost, "/contracts", contractForm, true)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	contracts := store.Contracts()
	require.Len(t, contracts, 1)
	store.AddExtract(contracts[0].ID, 3, 2024, decimalFromString(t, "1000"), "",
		decimalFromString(t, "0"), decimalFromString(t, "0"), decimalFromString(t, "200"))

	form := url.Values{
		"start_month": {"3"}, "start_year": {"2024"},
		"end_month": {"3"}, "end_year": {"2024"},
		"action": {"visualizar"},
	}
	resp, body := doRequest(t, app, nethttp.MethodPost, "/analises", form, true)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "03/2024")
	assert.Contains(t, body, "João da Silva")
	assert.Contains(t, body, "R$ 120,00", "comissão de 10% sobre 1200")
	assert.Contains(t, body, "R$ 1.080,00", "renda líquida de 1200*0,9")
}

func TestAnalysisDownload_NomeForaDoPadraoFalha(t *testing.T) {
	app, _ := buildTestApp(t)
	resp, _ := doRequest(t, app, nethttp.MethodGet, "/analises/download/outro_arquivo.xlsx", nil, false)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}
