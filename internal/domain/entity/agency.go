package entity

import "github.com/shopspring/decimal"

// Agency representa uma imobiliária que administra imóveis mediante comissão.
type Agency struct {
	ID          string
	Name        string
	CNPJ        string
	Address     string
	Commission  decimal.Decimal // fração 0–1 sobre a base do aluguel
	Phone       string
	PropertyIDs []string // imóveis sob administração, alimentado pelos contratos
}

// AddProperty registra um imóvel sob a imobiliária, sem duplicar.
func (a *Agency) AddProperty(propertyID string) {
	for _, id := range a.PropertyIDs {
		if id == propertyID {
			return
		}
	}
	a.PropertyIDs = append(a.PropertyIDs, propertyID)
}

// RemoveProperty retira um imóvel da lista, se presente.
func (a *Agency) RemoveProperty(propertyID string) {
	for i, id := range a.PropertyIDs {
		if id == propertyID {
			a.PropertyIDs = append(a.PropertyIDs[:i], a.PropertyIDs[i+1:]...)
			return
		}
	}
}
