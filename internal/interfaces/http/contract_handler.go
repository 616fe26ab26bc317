package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
)

// contractRow é o contrato cruzado com os nomes das entidades referenciadas,
// pronto para a tabela. Referências pendentes aparecem como "(removido)".
type contractRow struct {
	Contract *entity.Contract
	Tenant   string
	Property string
	Agency   string
}

func (h *Handler) contractRows() []contractRow {
	contracts := h.store.Contracts()
	rows := make([]contractRow, 0, len(contracts))
	for _, c := range contracts {
		row := contractRow{Contract: c, Tenant: "(removido)", Property: "(removido)", Agency: "(removido)"}
		if t := h.store.FindTenantByID(c.TenantID); t != nil {
			row.Tenant = t.Name
		}
		if p := h.store.FindPropertyByID(c.PropertyID); p != nil {
			row.Property = p.PropertyName
		}
		if a := h.store.FindAgencyByID(c.RealEstateID); a != nil {
			row.Agency = a.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// ContractList lista os contratos com os nomes já resolvidos.
func (h *Handler) ContractList(c *fiber.Ctx) error {
	return h.render(c, "contracts", fiber.Map{"Rows": h.contractRows()})
}

// ContractNew exibe o formulário com as opções de cada referência.
func (h *Handler) ContractNew(c *fiber.Ctx) error {
	return h.render(c, "contract_form", fiber.Map{
		"Tenants":    h.store.Tenants(),
		"Properties": h.store.Properties(),
		"Agencies":   h.store.Agencies(),
		"Guarantors": h.store.Guarantors(),
		"Insurances": h.store.BailInsurances(),
		"Guarantees": []entity.GuaranteeKind{
			entity.GuaranteeDeposit, entity.GuaranteeGuarantor, entity.GuaranteeBailInsurance,
		},
	})
}

// ContractCreate cadastra um contrato vigente e registra o imóvel na
// imobiliária responsável.
func (h *Handler) ContractCreate(c *fiber.Ctx) error {
	var in dto.ContractForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	deposit, err := dto.ParseMoney("caução", in.RentalDeposit)
	if err != nil {
		return h.renderError(c, err)
	}
	rent, err := dto.ParseMoney("aluguel", in.RentAmount)
	if err != nil {
		return h.renderError(c, err)
	}
	_, err = h.store.AddContract(entity.GuaranteeKind(in.Guarantee), deposit, rent,
		in.RoomName, in.PropertyID, in.TenantID, in.RealEstateID, in.GuaranteeID, in.FilePath)
	if err != nil {
		return h.renderError(c, err)
	}
	return h.ContractList(c)
}

// ContractClose marca o contrato como encerrado sem removê-lo do histórico.
func (h *Handler) ContractClose(c *fiber.Ctx) error {
	contract := h.store.FindContractByID(c.Params("id"))
	if contract == nil {
		return h.renderError(c, fmt.Errorf("%w: contrato %s", domain.ErrNotFound, c.Params("id")))
	}
	contract.SetActive(false)
	return h.ContractList(c)
}

// ContractDelete remove o contrato. Pagamentos e extratos ligados permanecem.
func (h *Handler) ContractDelete(c *fiber.Ctx) error {
	h.store.RemoveContract(c.Params("id"))
	return h.ContractList(c)
}
