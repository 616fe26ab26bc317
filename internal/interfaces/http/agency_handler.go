package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// AgencyList lista as imobiliárias na ordem de cadastro.
func (h *Handler) AgencyList(c *fiber.Ctx) error {
	return h.render(c, "real_estates", fiber.Map{"Agencies": h.store.Agencies()})
}

// AgencyNew exibe o formulário de cadastro.
func (h *Handler) AgencyNew(c *fiber.Ctx) error {
	return h.render(c, "real_estate_form", fiber.Map{})
}

// AgencyCreate cadastra uma imobiliária e devolve a lista atualizada.
func (h *Handler) AgencyCreate(c *fiber.Ctx) error {
	var in dto.AgencyForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	commission, err := in.ParseCommission()
	if err != nil {
		return h.renderError(c, err)
	}
	h.store.AddAgency(in.Name, in.CNPJ, commission, in.Phone, in.Address)
	return h.AgencyList(c)
}

// AgencyDelete remove a imobiliária. Contratos que a referenciam permanecem.
func (h *Handler) AgencyDelete(c *fiber.Ctx) error {
	h.store.RemoveAgency(c.Params("id"))
	return h.AgencyList(c)
}
