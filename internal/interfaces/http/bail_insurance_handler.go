package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// BailInsuranceList lista os seguros fiança na ordem de cadastro.
func (h *Handler) BailInsuranceList(c *fiber.Ctx) error {
	return h.render(c, "bail_insurances", fiber.Map{"Insurances": h.store.BailInsurances()})
}

// BailInsuranceNew exibe o formulário de cadastro.
func (h *Handler) BailInsuranceNew(c *fiber.Ctx) error {
	return h.render(c, "bail_insurance_form", fiber.Map{})
}

// BailInsuranceCreate cadastra um seguro fiança.
func (h *Handler) BailInsuranceCreate(c *fiber.Ctx) error {
	var in dto.BailInsuranceForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	value, err := dto.ParseMoney("valor", in.Value)
	if err != nil {
		return h.renderError(c, err)
	}
	h.store.AddBailInsurance(value, in.InsuranceCompany, in.Validity)
	return h.BailInsuranceList(c)
}

// BailInsuranceDelete remove o seguro fiança.
func (h *Handler) BailInsuranceDelete(c *fiber.Ctx) error {
	h.store.RemoveBailInsurance(c.Params("id"))
	return h.BailInsuranceList(c)
}
