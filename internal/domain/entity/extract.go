package entity

import "github.com/shopspring/decimal"

// Extract representa o extrato financeiro mensal de um contrato, usado na
// análise de imposto de renda.
type Extract struct {
	ID          string
	ContractID  string
	MonthRef    int // 1–12
	YearRef     int
	RentAmount  decimal.Decimal
	ReceiptPath string          // comprovante (opcional)
	IPTU        decimal.Decimal
	Water       decimal.Decimal
	Agreement   decimal.Decimal // valor de acordo/negociação do período
}

// UpdateValues atualiza os valores financeiros informados (nil mantém o atual).
func (e *Extract) UpdateValues(rentAmount, iptu, water *decimal.Decimal) {
	if rentAmount != nil {
		e.RentAmount = *rentAmount
	}
	if iptu != nil {
		e.IPTU = *iptu
	}
	if water != nil {
		e.Water = *water
	}
}
