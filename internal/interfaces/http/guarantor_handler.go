package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
)

// GuarantorList lista os fiadores na ordem de cadastro.
func (h *Handler) GuarantorList(c *fiber.Ctx) error {
	return h.render(c, "guarantors", fiber.Map{"Guarantors": h.store.Guarantors()})
}

// GuarantorNew exibe o formulário de cadastro.
func (h *Handler) GuarantorNew(c *fiber.Ctx) error {
	return h.render(c, "guarantor_form", fiber.Map{})
}

// GuarantorCreate cadastra um fiador; exige CPF ou CNPJ.
func (h *Handler) GuarantorCreate(c *fiber.Ctx) error {
	var in dto.GuarantorForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	if _, err := h.store.AddGuarantor(in.Name, in.CPF, in.CNPJ); err != nil {
		return h.renderError(c, err)
	}
	return h.GuarantorList(c)
}

// GuarantorDelete remove o fiador.
func (h *Handler) GuarantorDelete(c *fiber.Ctx) error {
	h.store.RemoveGuarantor(c.Params("id"))
	return h.GuarantorList(c)
}
