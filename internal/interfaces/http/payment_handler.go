package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/domain/entity"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
)

// paymentRow é o pagamento cruzado com o nome do inquilino do contrato.
type paymentRow struct {
	Payment *entity.Payment
	Tenant  string
}

func (h *Handler) paymentRows() []paymentRow {
	payments := h.store.Payments()
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		row := paymentRow{Payment: p, Tenant: "(removido)"}
		if ct := h.store.FindContractByID(p.ContractID); ct != nil {
			if t := h.store.FindTenantByID(ct.TenantID); t != nil {
				row.Tenant = t.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// PaymentList lista os pagamentos na ordem de registro.
func (h *Handler) PaymentList(c *fiber.Ctx) error {
	return h.render(c, "payments", fiber.Map{"Rows": h.paymentRows()})
}

// PaymentNew exibe o formulário com os contratos vigentes.
func (h *Handler) PaymentNew(c *fiber.Ctx) error {
	return h.render(c, "payment_form", fiber.Map{
		"Contracts": h.store.ActiveContracts(),
	})
}

// PaymentCreate registra o pagamento e, sem caminho de recibo informado, gera
// o recibo em PDF no diretório de documentos. A falha na geração do recibo não
// desfaz o registro do pagamento.
func (h *Handler) PaymentCreate(c *fiber.Ctx) error {
	var in dto.PaymentForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}
	id := h.store.AddPayment(in.ContractID, in.ReceiptPath, in.MonthRef, in.YearRef)
	if in.ReceiptPath == "" {
		if err := h.generateReceipt(id); err != nil {
			h.log.Warn().Str("payment_id", id).Err(err).Msg("recibo não gerado")
		}
	}
	return h.PaymentList(c)
}

// generateReceipt resolve as entidades do pagamento, gera o PDF e grava o
// caminho resultante no próprio pagamento.
func (h *Handler) generateReceipt(paymentID string) error {
	payment := h.store.FindPaymentByID(paymentID)
	if payment == nil {
		return fmt.Errorf("%w: pagamento %s", domain.ErrNotFound, paymentID)
	}
	contract := h.store.FindContractByID(payment.ContractID)
	if contract == nil {
		return fmt.Errorf("%w: pagamento %s referencia contrato %s", domain.ErrBrokenReference, payment.ID, payment.ContractID)
	}
	tenant := h.store.FindTenantByID(contract.TenantID)
	property := h.store.FindPropertyByID(contract.PropertyID)
	agency := h.store.FindAgencyByID(contract.RealEstateID)
	if tenant == nil || property == nil || agency == nil {
		return fmt.Errorf("%w: contrato %s com referências pendentes", domain.ErrBrokenReference, contract.ID)
	}

	doc, err := h.receipts.GenerateReceipt(payment, contract, tenant, property, agency)
	if err != nil {
		return err
	}
	dir := filepath.Join(h.docsDir, "recibos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, pdf.ReceiptFileName(payment, tenant))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	payment.ReceiptPath = path
	h.log.Info().Str("payment_id", payment.ID).Str("path", path).Msg("recibo gerado")
	return nil
}

// PaymentReceipt baixa o recibo do pagamento, se houver.
func (h *Handler) PaymentReceipt(c *fiber.Ctx) error {
	payment := h.store.FindPaymentByID(c.Params("id"))
	if payment == nil {
		return h.renderError(c, fmt.Errorf("%w: pagamento %s", domain.ErrNotFound, c.Params("id")))
	}
	if payment.ReceiptPath == "" {
		return h.renderError(c, fmt.Errorf("%w: pagamento sem recibo", domain.ErrNotFound))
	}
	return c.Download(payment.ReceiptPath)
}

// PaymentDelete remove o pagamento.
func (h *Handler) PaymentDelete(c *fiber.Ctx) error {
	h.store.RemovePayment(c.Params("id"))
	return h.PaymentList(c)
}
