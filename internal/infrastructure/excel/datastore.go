// Package excel implementa o porto de persistência sobre planilhas xlsx,
// uma por entidade, dentro do diretório de dados configurado.
package excel

import (
	"path/filepath"
	"strings"

	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/domain/repository"
	"github.com/Apeirom/rental-manager/pkg/brformat"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// Nomes dos arquivos de cada coleção.
const (
	FileTenants        = "tenant.xlsx"
	FileProperties     = "property.xlsx"
	FileContracts      = "contract.xlsx"
	FileAgencies       = "real_estate.xlsx"
	FilePayments       = "payments.xlsx"
	FileExtracts       = "extract.xlsx"
	FileGuarantors     = "guarantor.xlsx"
	FileBailInsurances = "bail_insurance.xlsx"
)

// Cabeçalhos fixos por arquivo. A ordem aqui é a ordem de gravação; a leitura
// localiza colunas pelo nome.
var fileHeaders = map[string][]string{
	FileTenants:        {"id", "name", "cpf", "cnpj"},
	FileProperties:     {"id", "property_name", "owner_name", "address", "room_count"},
	FileContracts:      {"id", "guarantee", "rental_deposit", "guarantee_id", "rent_amount", "room_name", "property_id", "tenant_id", "real_estate_id", "acting", "file_path"},
	FileAgencies:       {"id", "name", "cnpj", "address", "commission", "phone", "property_ids"},
	FilePayments:       {"id", "payment_date", "month_ref", "year_ref", "contract_id", "receipt_path"},
	FileExtracts:       {"id", "contract_id", "month_ref", "year_ref", "rent_amount", "receipt_path", "iptu", "water", "agreement"},
	FileGuarantors:     {"id", "name", "cpf", "cnpj"},
	FileBailInsurances: {"id", "value", "vality", "insurance_company"},
}

// DataStore persiste as coleções em planilhas. Implementa repository.DataStore.
type DataStore struct {
	dir string
	log *logger.Logger
}

// New constrói o adaptador apontando para o diretório de dados.
func New(dir string, log *logger.Logger) *DataStore {
	return &DataStore{dir: dir, log: log}
}

func (ds *DataStore) path(file string) string {
	return filepath.Join(ds.dir, file)
}

// EnsureFiles cria as planilhas vazias (só cabeçalhos) que ainda não existem.
// Arquivos existentes nunca são sobrescritos.
func (ds *DataStore) EnsureFiles() error {
	for file, headers := range fileHeaders {
		path := ds.path(file)
		if fileExists(path) {
			ds.log.Debug().Str("file", file).Msg("planilha já existe, mantida")
			continue
		}
		if err := writeSheet(path, headers, nil); err != nil {
			return err
		}
		ds.log.Info().Str("file", file).Msg("planilha criada")
	}
	return nil
}

// ── Leitura ───────────────────────────────────────────────────────────────────

// LoadTenants carrega os inquilinos na ordem das linhas.
func (ds *DataStore) LoadTenants() ([]*entity.Tenant, error) {
	recs, err := readSheet(ds.path(FileTenants))
	if err != nil {
		return nil, err
	}
	tenants := make([]*entity.Tenant, 0, len(recs))
	for _, r := range recs {
		tenants = append(tenants, &entity.Tenant{
			ID:   r["id"],
			Name: r["name"],
			CPF:  r["cpf"],
			CNPJ: r["cnpj"],
		})
	}
	return tenants, nil
}

// LoadProperties carrega os imóveis na ordem das linhas.
func (ds *DataStore) LoadProperties() ([]*entity.Property, error) {
	recs, err := readSheet(ds.path(FileProperties))
	if err != nil {
		return nil, err
	}
	properties := make([]*entity.Property, 0, len(recs))
	for _, r := range recs {
		rooms, err := parseInt(r["room_count"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("imóvel com room_count inválido, linha ignorada")
			continue
		}
		properties = append(properties, &entity.Property{
			ID:           r["id"],
			PropertyName: r["property_name"],
			OwnerName:    r["owner_name"],
			Address:      r["address"],
			RoomCount:    rooms,
		})
	}
	return properties, nil
}

// LoadAgencies carrega as imobiliárias; property_ids é desfeito da junção por vírgula.
func (ds *DataStore) LoadAgencies() ([]*entity.Agency, error) {
	recs, err := readSheet(ds.path(FileAgencies))
	if err != nil {
		return nil, err
	}
	agencies := make([]*entity.Agency, 0, len(recs))
	for _, r := range recs {
		commission, err := brformat.ParseDecimal(r["commission"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("imobiliária com comissão inválida, linha ignorada")
			continue
		}
		var propertyIDs []string
		for _, id := range strings.Split(r["property_ids"], ",") {
			if id = strings.TrimSpace(id); id != "" {
				propertyIDs = append(propertyIDs, id)
			}
		}
		agencies = append(agencies, &entity.Agency{
			ID:          r["id"],
			Name:        r["name"],
			CNPJ:        r["cnpj"],
			Address:     r["address"],
			Commission:  commission,
			Phone:       r["phone"],
			PropertyIDs: propertyIDs,
		})
	}
	return agencies, nil
}

// LoadContracts carrega os contratos na ordem das linhas.
func (ds *DataStore) LoadContracts() ([]*entity.Contract, error) {
	recs, err := readSheet(ds.path(FileContracts))
	if err != nil {
		return nil, err
	}
	contracts := make([]*entity.Contract, 0, len(recs))
	for _, r := range recs {
		deposit, err := brformat.ParseDecimal(r["rental_deposit"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("contrato com caução inválida, linha ignorada")
			continue
		}
		rent, err := brformat.ParseDecimal(r["rent_amount"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("contrato com aluguel inválido, linha ignorada")
			continue
		}
		contracts = append(contracts, &entity.Contract{
			ID:            r["id"],
			Guarantee:     entity.GuaranteeKind(r["guarantee"]),
			RentalDeposit: deposit,
			GuaranteeID:   r["guarantee_id"],
			RentAmount:    rent,
			RoomName:      r["room_name"],
			PropertyID:    r["property_id"],
			TenantID:      r["tenant_id"],
			RealEstateID:  r["real_estate_id"],
			Acting:        parseBool(r["acting"]),
			FilePath:      r["file_path"],
		})
	}
	return contracts, nil
}

// LoadPayments carrega os pagamentos na ordem das linhas.
func (ds *DataStore) LoadPayments() ([]*entity.Payment, error) {
	recs, err := readSheet(ds.path(FilePayments))
	if err != nil {
		return nil, err
	}
	payments := make([]*entity.Payment, 0, len(recs))
	for _, r := range recs {
		month, errM := parseInt(r["month_ref"])
		year, errY := parseInt(r["year_ref"])
		if errM != nil || errY != nil {
			ds.log.Warn().Str("id", r["id"]).Msg("pagamento com referência inválida, linha ignorada")
			continue
		}
		payments = append(payments, &entity.Payment{
			ID:          r["id"],
			ContractID:  r["contract_id"],
			ReceiptPath: r["receipt_path"],
			MonthRef:    month,
			YearRef:     year,
			PaymentDate: r["payment_date"],
		})
	}
	return payments, nil
}

// LoadExtracts carrega os extratos. Todos os campos monetários passam pela
// mesma política de parsing (brformat.ParseDecimal).
func (ds *DataStore) LoadExtracts() ([]*entity.Extract, error) {
	recs, err := readSheet(ds.path(FileExtracts))
	if err != nil {
		return nil, err
	}
	extracts := make([]*entity.Extract, 0, len(recs))
	for _, r := range recs {
		month, errM := parseInt(r["month_ref"])
		year, errY := parseInt(r["year_ref"])
		rent, errR := brformat.ParseDecimal(r["rent_amount"])
		iptu, errI := brformat.ParseDecimal(r["iptu"])
		water, errW := brformat.ParseDecimal(r["water"])
		agreement, errA := brformat.ParseDecimal(r["agreement"])
		if errM != nil || errY != nil || errR != nil || errI != nil || errW != nil || errA != nil {
			ds.log.Warn().Str("id", r["id"]).Msg("extrato com valores inválidos, linha ignorada")
			continue
		}
		extracts = append(extracts, &entity.Extract{
			ID:          r["id"],
			ContractID:  r["contract_id"],
			MonthRef:    month,
			YearRef:     year,
			RentAmount:  rent,
			ReceiptPath: r["receipt_path"],
			IPTU:        iptu,
			Water:       water,
			Agreement:   agreement,
		})
	}
	return extracts, nil
}

// LoadGuarantors carrega os fiadores; linhas sem CPF e CNPJ são descartadas
// com aviso, pois violam o invariante do fiador.
func (ds *DataStore) LoadGuarantors() ([]*entity.Guarantor, error) {
	recs, err := readSheet(ds.path(FileGuarantors))
	if err != nil {
		return nil, err
	}
	guarantors := make([]*entity.Guarantor, 0, len(recs))
	for _, r := range recs {
		g, err := entity.NewGuarantor(r["id"], r["name"], r["cpf"], r["cnpj"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("fiador inválido, linha ignorada")
			continue
		}
		guarantors = append(guarantors, g)
	}
	return guarantors, nil
}

// LoadBailInsurances carrega os seguros fiança.
func (ds *DataStore) LoadBailInsurances() ([]*entity.BailInsurance, error) {
	recs, err := readSheet(ds.path(FileBailInsurances))
	if err != nil {
		return nil, err
	}
	insurances := make([]*entity.BailInsurance, 0, len(recs))
	for _, r := range recs {
		value, err := brformat.ParseDecimal(r["value"])
		if err != nil {
			ds.log.Warn().Str("id", r["id"]).Err(err).Msg("seguro com valor inválido, linha ignorada")
			continue
		}
		insurances = append(insurances, &entity.BailInsurance{
			ID:               r["id"],
			Value:            value,
			Validity:         r["vality"],
			InsuranceCompany: r["insurance_company"],
		})
	}
	return insurances, nil
}

// ── Gravação ──────────────────────────────────────────────────────────────────

// SaveAll grava as oito planilhas em modo best-effort: a falha de um arquivo é
// registrada e relatada, mas não interrompe os demais.
func (ds *DataStore) SaveAll(snap repository.Snapshot) []repository.SaveIssue {
	var issues []repository.SaveIssue
	save := func(file string, rows [][]any) {
		if err := writeSheet(ds.path(file), fileHeaders[file], rows); err != nil {
			ds.log.Error().Str("file", file).Err(err).Msg("falha ao salvar planilha")
			issues = append(issues, repository.SaveIssue{File: file, Err: err})
		}
	}

	tenantRows := make([][]any, 0, len(snap.Tenants))
	for _, t := range snap.Tenants {
		tenantRows = append(tenantRows, []any{t.ID, t.Name, t.CPF, t.CNPJ})
	}
	save(FileTenants, tenantRows)

	propertyRows := make([][]any, 0, len(snap.Properties))
	for _, p := range snap.Properties {
		propertyRows = append(propertyRows, []any{p.ID, p.PropertyName, p.OwnerName, p.Address, p.RoomCount})
	}
	save(FileProperties, propertyRows)

	contractRows := make([][]any, 0, len(snap.Contracts))
	for _, c := range snap.Contracts {
		contractRows = append(contractRows, []any{
			c.ID, string(c.Guarantee), c.RentalDeposit.InexactFloat64(), c.GuaranteeID,
			c.RentAmount.InexactFloat64(), c.RoomName, c.PropertyID, c.TenantID,
			c.RealEstateID, c.Acting, c.FilePath,
		})
	}
	save(FileContracts, contractRows)

	agencyRows := make([][]any, 0, len(snap.Agencies))
	for _, a := range snap.Agencies {
		agencyRows = append(agencyRows, []any{
			a.ID, a.Name, a.CNPJ, a.Address, a.Commission.InexactFloat64(),
			a.Phone, strings.Join(a.PropertyIDs, ","),
		})
	}
	save(FileAgencies, agencyRows)

	paymentRows := make([][]any, 0, len(snap.Payments))
	for _, p := range snap.Payments {
		paymentRows = append(paymentRows, []any{p.ID, p.PaymentDate, p.MonthRef, p.YearRef, p.ContractID, p.ReceiptPath})
	}
	save(FilePayments, paymentRows)

	extractRows := make([][]any, 0, len(snap.Extracts))
	for _, e := range snap.Extracts {
		extractRows = append(extractRows, []any{
			e.ID, e.ContractID, e.MonthRef, e.YearRef, e.RentAmount.InexactFloat64(),
			e.ReceiptPath, e.IPTU.InexactFloat64(), e.Water.InexactFloat64(), e.Agreement.InexactFloat64(),
		})
	}
	save(FileExtracts, extractRows)

	guarantorRows := make([][]any, 0, len(snap.Guarantors))
	for _, g := range snap.Guarantors {
		guarantorRows = append(guarantorRows, []any{g.ID, g.Name, g.CPF, g.CNPJ})
	}
	save(FileGuarantors, guarantorRows)

	insuranceRows := make([][]any, 0, len(snap.BailInsurances))
	for _, b := range snap.BailInsurances {
		insuranceRows = append(insuranceRows, []any{b.ID, b.Value.InexactFloat64(), b.Validity, b.InsuranceCompany})
	}
	save(FileBailInsurances, insuranceRows)

	return issues
}
