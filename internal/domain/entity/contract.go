package entity

import "github.com/shopspring/decimal"

// GuaranteeKind tipo de garantia que lastreia um contrato.
type GuaranteeKind string

const (
	GuaranteeDeposit       GuaranteeKind = "Caução"
	GuaranteeGuarantor     GuaranteeKind = "Fiador"
	GuaranteeBailInsurance GuaranteeKind = "Seguro Fiança"
)

// Contract é a entidade central: liga inquilino, imóvel e imobiliária,
// carrega a garantia e o flag de vigência.
type Contract struct {
	ID            string
	Guarantee     GuaranteeKind
	RentalDeposit decimal.Decimal // valor da caução; zero salvo Guarantee == Caução
	GuaranteeID   string          // fiador ou seguro fiança; vazio para caução
	RentAmount    decimal.Decimal
	RoomName      string
	PropertyID    string
	TenantID      string
	RealEstateID  string
	FilePath      string // caminho do arquivo do contrato (opcional)
	Acting        bool   // vigente ou não; único sinal de "ativo" do sistema
}

// SetActive altera a vigência do contrato.
func (c *Contract) SetActive(active bool) { c.Acting = active }
