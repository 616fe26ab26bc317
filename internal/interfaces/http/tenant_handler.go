package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// TenantList lista os inquilinos na ordem de cadastro.
func (h *Handler) TenantList(c *fiber.Ctx) error {
	return h.render(c, "tenants", fiber.Map{"Tenants": h.store.Tenants()})
}

// TenantNew exibe o formulário de cadastro.
func (h *Handler) TenantNew(c *fiber.Ctx) error {
	return h.render(c, "tenant_form", fiber.Map{})
}

// TenantCreate cadastra um inquilino e devolve a lista atualizada.
func (h *Handler) TenantCreate(c *fiber.Ctx) error {
	var in dto.TenantForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	h.store.AddTenant(in.Name, in.CPF, in.CNPJ)
	return h.TenantList(c)
}

// TenantDelete remove o inquilino; id ausente não é erro.
func (h *Handler) TenantDelete(c *fiber.Ctx) error {
	h.store.RemoveTenant(c.Params("id"))
	return h.TenantList(c)
}
