package entity

import "github.com/shopspring/decimal"

// BailInsurance representa uma apólice de seguro fiança.
type BailInsurance struct {
	ID               string
	Value            decimal.Decimal // valor coberto
	InsuranceCompany string
	Validity         string // data de validade DD/MM/YYYY, como digitada
}
