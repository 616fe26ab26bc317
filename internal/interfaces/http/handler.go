// Package http serve a interface web do sistema: páginas HTML renderizadas no
// servidor com recarga parcial via htmx (cabeçalho HX-Request).
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// Handler concentra as dependências dos handlers web.
type Handler struct {
	store    *rental.Store
	engine   *analysis.Engine
	receipts *pdf.ReceiptGenerator
	log      *logger.Logger
	docsDir  string
}

// NewHandler constrói o conjunto de handlers.
func NewHandler(store *rental.Store, engine *analysis.Engine, receipts *pdf.ReceiptGenerator, log *logger.Logger, docsDir string) *Handler {
	return &Handler{store: store, engine: engine, receipts: receipts, log: log, docsDir: docsDir}
}

// render escolhe entre a página completa e o fragmento: pedidos htmx trazem
// HX-Request e recebem só o miolo; navegação direta recebe o layout inteiro.
func (h *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	if c.Get("HX-Request") == "true" {
		return c.Render(name, data)
	}
	return c.Render(name, data, "layouts/main")
}

// renderError devolve o fragmento de erro com o status HTTP adequado ao tipo
// do erro de domínio.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrBrokenReference):
		status = fiber.StatusConflict
	}
	h.log.Warn().Err(err).Int("status", status).Msg("erro na requisição web")
	return c.Status(status).Render("error", fiber.Map{"Message": err.Error()})
}
