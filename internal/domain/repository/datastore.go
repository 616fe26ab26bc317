package repository

import "github.com/Apeirom/rental-manager/internal/domain/entity"

// Snapshot agrupa as oito coleções na ordem de inserção, prontas para gravação.
type Snapshot struct {
	Tenants        []*entity.Tenant
	Properties     []*entity.Property
	Agencies       []*entity.Agency
	Contracts      []*entity.Contract
	Payments       []*entity.Payment
	Extracts       []*entity.Extract
	Guarantors     []*entity.Guarantor
	BailInsurances []*entity.BailInsurance
}

// SaveIssue relata a falha de gravação de um arquivo individual. A gravação é
// best-effort: um arquivo que falha não impede os demais.
type SaveIssue struct {
	File string
	Err  error
}

// DataStore define o porto de persistência das coleções (uma planilha por
// entidade). Arquivo inexistente carrega como coleção vazia, não como erro.
type DataStore interface {
	LoadTenants() ([]*entity.Tenant, error)
	LoadProperties() ([]*entity.Property, error)
	LoadAgencies() ([]*entity.Agency, error)
	LoadContracts() ([]*entity.Contract, error)
	LoadPayments() ([]*entity.Payment, error)
	LoadExtracts() ([]*entity.Extract, error)
	LoadGuarantors() ([]*entity.Guarantor, error)
	LoadBailInsurances() ([]*entity.BailInsurance, error)
	SaveAll(snap Snapshot) []SaveIssue
}
