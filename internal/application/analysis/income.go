// Package analysis constrói o relatório de renda para imposto de renda a
// partir dos extratos, cruzando contrato, inquilino, imóvel e imobiliária.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// Period identifica um mês de referência.
type Period struct {
	Year  int
	Month int
}

// Date devolve o primeiro dia do mês, base da comparação de intervalo.
func (p Period) Date() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Label devolve o rótulo MM/YYYY do período.
func (p Period) Label() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// Validate garante um mês 1–12 e um ano de quatro dígitos.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: mês %d fora de 1–12", domain.ErrValidation, p.Month)
	}
	if p.Year < 1000 || p.Year > 9999 {
		return fmt.Errorf("%w: ano %d inválido", domain.ErrValidation, p.Year)
	}
	return nil
}

// Row é uma linha do relatório: um extrato já cruzado e com os valores
// derivados calculados.
type Row struct {
	Period       Period
	RefLabel     string // MM/YYYY
	TenantName   string
	Document     string // CPF ou CNPJ do inquilino
	DocumentKind string // "CPF", "CNPJ" ou "N/D"
	Unit         string // "imóvel - sala"
	AgencyName   string
	Rent         decimal.Decimal
	IPTU         decimal.Decimal
	Water        decimal.Decimal
	Agreement    decimal.Decimal
	Commission   decimal.Decimal // commission da imobiliária * base
	NetIncome    decimal.Decimal // base * (1 - commission)
}

// Report é o resultado ordenado cronologicamente de uma análise.
type Report struct {
	Start Period
	End   Period
	Rows  []Row
}

// Group agrupa as linhas de um mesmo período de referência.
type Group struct {
	Label string
	Rows  []Row
}

// Groups devolve as linhas agrupadas por período, na ordem cronológica do
// relatório.
func (r *Report) Groups() []Group {
	var groups []Group
	for _, row := range r.Rows {
		if n := len(groups); n > 0 && groups[n-1].Label == row.RefLabel {
			groups[n-1].Rows = append(groups[n-1].Rows, row)
			continue
		}
		groups = append(groups, Group{Label: row.RefLabel, Rows: []Row{row}})
	}
	return groups
}

// Engine calcula relatórios sobre o Store.
type Engine struct {
	store *rental.Store
}

// NewEngine constrói o motor de análise.
func NewEngine(store *rental.Store) *Engine {
	return &Engine{store: store}
}

// BuildIncomeReport filtra os extratos cujo período cai no intervalo fechado
// [start, end] (comparado pelo primeiro dia do mês) e monta uma linha por
// extrato. Qualquer referência quebrada aborta o relatório inteiro: omitir a
// linha produziria totais enganosos.
func (e *Engine) BuildIncomeReport(start, end Period) (*Report, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	from := start.Date()
	to := end.Date()
	one := decimal.NewFromInt(1)

	var rows []Row
	for _, extract := range e.store.Extracts() {
		ref := Period{Year: extract.YearRef, Month: extract.MonthRef}
		d := ref.Date()
		if d.Before(from) || d.After(to) {
			continue
		}

		contract := e.store.FindContractByID(extract.ContractID)
		if contract == nil {
			return nil, fmt.Errorf("%w: extrato %s referencia contrato %s", domain.ErrBrokenReference, extract.ID, extract.ContractID)
		}
		tenant := e.store.FindTenantByID(contract.TenantID)
		if tenant == nil {
			return nil, fmt.Errorf("%w: contrato %s referencia inquilino %s", domain.ErrBrokenReference, contract.ID, contract.TenantID)
		}
		agency := e.store.FindAgencyByID(contract.RealEstateID)
		if agency == nil {
			return nil, fmt.Errorf("%w: contrato %s referencia imobiliária %s", domain.ErrBrokenReference, contract.ID, contract.RealEstateID)
		}
		property := e.store.FindPropertyByID(contract.PropertyID)
		if property == nil {
			return nil, fmt.Errorf("%w: contrato %s referencia imóvel %s", domain.ErrBrokenReference, contract.ID, contract.PropertyID)
		}

		base := extract.RentAmount.Add(extract.Agreement)
		rows = append(rows, Row{
			Period:       ref,
			RefLabel:     ref.Label(),
			TenantName:   tenant.Name,
			Document:     tenant.Document(),
			DocumentKind: tenant.DocumentKind(),
			Unit:         property.PropertyName + " - " + contract.RoomName,
			AgencyName:   agency.Name,
			Rent:         extract.RentAmount,
			IPTU:         extract.IPTU,
			Water:        extract.Water,
			Agreement:    extract.Agreement,
			Commission:   agency.Commission.Mul(base),
			NetIncome:    base.Mul(one.Sub(agency.Commission)),
		})
	}

	// Ordenação cronológica estável: empates mantêm a ordem original dos extratos
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Period.Year != rows[j].Period.Year {
			return rows[i].Period.Year < rows[j].Period.Year
		}
		return rows[i].Period.Month < rows[j].Period.Month
	})

	return &Report{Start: start, End: end, Rows: rows}, nil
}
