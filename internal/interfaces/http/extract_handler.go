package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
)

// extractRow é o extrato cruzado com o nome do inquilino do contrato.
type extractRow struct {
	Extract *entity.Extract
	Tenant  string
}

func (h *Handler) extractRows() []extractRow {
	extracts := h.store.Extracts()
	rows := make([]extractRow, 0, len(extracts))
	for _, e := range extracts {
		row := extractRow{Extract: e, Tenant: "(removido)"}
		if ct := h.store.FindContractByID(e.ContractID); ct != nil {
			if t := h.store.FindTenantByID(ct.TenantID); t != nil {
				row.Tenant = t.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ExtractList lista os extratos na ordem de registro.
func (h *Handler) ExtractList(c *fiber.Ctx) error {
	return h.render(c, "extracts", fiber.Map{"Rows": h.extractRows()})
}

// ExtractNew exibe o formulário com os contratos vigentes.
func (h *Handler) ExtractNew(c *fiber.Ctx) error {
	return h.render(c, "extract_form", fiber.Map{
		"Contracts": h.store.ActiveContracts(),
	})
}

// ExtractCreate registra o extrato financeiro de um período.
func (h *Handler) ExtractCreate(c *fiber.Ctx) error {
	var in dto.ExtractForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	rent, err := dto.ParseMoney("aluguel", in.RentAmount)
	if err != nil {
		return h.renderError(c, err)
	}
	iptu, err := dto.ParseMoney("iptu", in.IPTU)
	if err != nil {
		return h.renderError(c, err)
	}
	water, err := dto.ParseMoney("água", in.Water)
	if err != nil {
		return h.renderError(c, err)
	}
	agreement, err := dto.ParseMoney("acordo", in.Agreement)
	if err != nil {
		return h.renderError(c, err)
	}
	h.store.AddExtract(in.ContractID, in.MonthRef, in.YearRef, rent, in.ReceiptPath, iptu, water, agreement)
	return h.ExtractList(c)
}

// ExtractDelete remove o extrato.
func (h *Handler) ExtractDelete(c *fiber.Ctx) error {
	h.store.RemoveExtract(c.Params("id"))
	return h.ExtractList(c)
}
