package entity

import (
	"fmt"

	"github.com/Apeirom/rental-manager/internal/domain"
)

// Guarantor representa um fiador de contrato (pessoa física ou jurídica).
type Guarantor struct {
	ID   string
	Name string
	CPF  string
	CNPJ string
}

// NewGuarantor valida que o fiador tenha CPF ou CNPJ.
func NewGuarantor(id, name, cpf, cnpj string) (*Guarantor, error) {
	if cpf == "" && cnpj == "" {
		return nil, fmt.Errorf("%w: fiador deve ter CPF ou CNPJ", domain.ErrValidation)
	}
	return &Guarantor{ID: id, Name: name, CPF: cpf, CNPJ: cnpj}, nil
}

// IsCompany indica se o fiador é pessoa jurídica.
func (g *Guarantor) IsCompany() bool { return g.CNPJ != "" }
