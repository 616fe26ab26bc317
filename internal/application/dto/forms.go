// Package dto define as entradas dos formulários web e sua validação.
// Os campos monetários chegam como texto no formato brasileiro e são
// convertidos por brformat.ParseDecimal.
package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/pkg/brformat"
)

var validate = validator.New()

// Validate aplica as tags de validação de um formulário e embrulha a falha
// como erro de validação do domínio.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// TenantForm entrada para criar um inquilino.
type TenantForm struct {
	Name string `form:"name" validate:"required,min=1,max=200"`
	CPF  string `form:"cpf" validate:"omitempty,max=14"`
	CNPJ string `form:"cnpj" validate:"omitempty,max=18"`
}

// PropertyForm entrada para criar um imóvel.
type PropertyForm struct {
	PropertyName string `form:"property_name" validate:"required,min=1,max=200"`
	OwnerName    string `form:"owner_name" validate:"required,min=1,max=200"`
	Address      string `form:"address" validate:"required,min=1,max=300"`
	RoomCount    int    `form:"room_count" validate:"min=0"`
}

// AgencyForm entrada para criar uma imobiliária. Commission é a fração da
// comissão (0,10 = 10%).
type AgencyForm struct {
	Name       string `form:"name" validate:"required,min=1,max=200"`
	CNPJ       string `form:"cnpj" validate:"omitempty,max=18"`
	Commission string `form:"commission" validate:"required"`
	Phone      string `form:"phone" validate:"omitempty,max=20"`
	Address    string `form:"address" validate:"omitempty,max=300"`
}

// ParseCommission converte o texto da comissão e exige o intervalo [0, 1].
func (f *AgencyForm) ParseCommission() (decimal.Decimal, error) {
	c, err := brformat.ParseDecimal(f.Commission)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: comissão %q inválida", domain.ErrValidation, f.Commission)
	}
	if c.IsNegative() || c.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%w: comissão deve estar entre 0 e 1", domain.ErrValidation)
	}
	return c, nil
}

// GuarantorForm entrada para criar um fiador. O invariante (CPF ou CNPJ) é
// do domínio; aqui só se limita o tamanho.
type GuarantorForm struct {
	Name string `form:"name" validate:"required,min=1,max=200"`
	CPF  string `form:"cpf" validate:"omitempty,max=14"`
	CNPJ string `form:"cnpj" validate:"omitempty,max=18"`
}

// BailInsuranceForm entrada para criar um seguro fiança.
type BailInsuranceForm struct {
	Value            string `form:"value" validate:"required"`
	InsuranceCompany string `form:"insurance_company" validate:"required,min=1,max=200"`
	Validity         string `form:"validity" validate:"omitempty,max=30"`
}

// ContractForm entrada para criar um contrato.
type ContractForm struct {
	Guarantee     string `form:"guarantee" validate:"required,oneof=Caução Fiador 'Seguro Fiança'"`
	RentalDeposit string `form:"rental_deposit"`
	GuaranteeID   string `form:"guarantee_id"`
	RentAmount    string `form:"rent_amount" validate:"required"`
	RoomName      string `form:"room_name" validate:"omitempty,max=100"`
	PropertyID    string `form:"property_id" validate:"required"`
	TenantID      string `form:"tenant_id" validate:"required"`
	RealEstateID  string `form:"real_estate_id" validate:"required"`
	FilePath      string `form:"file_path"`
}

// PaymentForm entrada para registrar um pagamento de aluguel.
type PaymentForm struct {
	ContractID  string `form:"contract_id" validate:"required"`
	MonthRef    int    `form:"month_ref" validate:"min=1,max=12"`
	YearRef     int    `form:"year_ref" validate:"min=1000,max=9999"`
	ReceiptPath string `form:"receipt_path"`
}

// ExtractForm entrada para registrar um extrato mensal.
type ExtractForm struct {
	ContractID  string `form:"contract_id" validate:"required"`
	MonthRef    int    `form:"month_ref" validate:"min=1,max=12"`
	YearRef     int    `form:"year_ref" validate:"min=1000,max=9999"`
	RentAmount  string `form:"rent_amount" validate:"required"`
	IPTU        string `form:"iptu"`
	Water       string `form:"water"`
	Agreement   string `form:"agreement"`
	ReceiptPath string `form:"receipt_path"`
}

// AnalysisForm intervalo pedido para a análise de imposto de renda.
type AnalysisForm struct {
	StartMonth int    `form:"start_month" validate:"min=1,max=12"`
	StartYear  int    `form:"start_year" validate:"min=1000,max=9999"`
	EndMonth   int    `form:"end_month" validate:"min=1,max=12"`
	EndYear    int    `form:"end_year" validate:"min=1000,max=9999"`
	Action     string `form:"action" validate:"omitempty,oneof=visualizar exportar"`
}

// ParseMoney converte um campo monetário opcional de formulário; vazio vale zero.
func ParseMoney(field, raw string) (decimal.Decimal, error) {
	d, err := brformat.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q inválido", domain.ErrValidation, field, raw)
	}
	return d, nil
}
