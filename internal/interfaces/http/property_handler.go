package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// PropertyList lista os imóveis na ordem de cadastro.
func (h *Handler) PropertyList(c *fiber.Ctx) error {
	return h.render(c, "properties", fiber.Map{"Properties": h.store.Properties()})
}

// PropertyNew exibe o formulário de cadastro.
func (h *Handler) PropertyNew(c *fiber.Ctx) error {
	return h.render(c, "property_form", fiber.Map{})
}

// PropertyCreate cadastra um imóvel e devolve a lista atualizada.
func (h *Handler) PropertyCreate(c *fiber.Ctx) error {
	var in dto.PropertyForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	h.store.AddProperty(in.PropertyName, in.OwnerName, in.Address, in.RoomCount)
	return h.PropertyList(c)
}

// PropertyDelete remove o imóvel. Contratos que o referenciam permanecem.
func (h *Handler) PropertyDelete(c *fiber.Ctx) error {
	h.store.RemoveProperty(c.Params("id"))
	return h.PropertyList(c)
}
