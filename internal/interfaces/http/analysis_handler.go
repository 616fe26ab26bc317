package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/dto"
	"github.com/Apeirom/rental-manager/internal/domain"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
)

// AnalysisForm exibe o formulário de intervalo da análise de imposto de renda.
func (h *Handler) AnalysisForm(c *fiber.Ctx) error {
	return h.render(c, "analysis", fiber.Map{})
}

// AnalysisRun monta o relatório do intervalo pedido. A ação "exportar" também
// grava a planilha no diretório de documentos e oferece o download.
func (h *Handler) AnalysisRun(c *fiber.Ctx) error {
	var in dto.AnalysisForm
	if err := c.BodyParser(&in); err != nil {
		return h.renderError(c, fmt.Errorf("%w: formulário inválido", domain.ErrValidation))
	}
	if err := dto.Validate(&in); err != nil {
		return h.renderError(c, err)
	}

	start := analysis.Period{Year: in.StartYear, Month: in.StartMonth}
	end := analysis.Period{Year: in.EndYear, Month: in.EndMonth}
	report, err := h.engine.BuildIncomeReport(start, end)
	if err != nil {
		return h.renderError(c, err)
	}

	data := fiber.Map{
		"Report": report,
		"Groups": report.Groups(),
		"Empty":  len(report.Rows) == 0,
	}
	if in.Action == "exportar" && len(report.Rows) > 0 {
		path, err := excel.WriteIncomeReport(filepath.Join(h.docsDir, "analises"), report)
		if err != nil {
			return h.renderError(c, err)
		}
		data["ExportFile"] = filepath.Base(path)
		h.log.Info().Str("path", path).Msg("análise exportada")
	}
	return h.render(c, "analysis_result", data)
}

// AnalysisDownload baixa uma planilha de análise já exportada. Só nomes de
// arquivo gerados pelo próprio sistema são aceitos.
func (h *Handler) AnalysisDownload(c *fiber.Ctx) error {
	file := filepath.Base(c.Params("file"))
	if !strings.HasPrefix(file, "analise_imposto_renda_") || !strings.HasSuffix(file, ".xlsx") {
		return h.renderError(c, fmt.Errorf("%w: arquivo de análise inválido", domain.ErrValidation))
	}
	return c.Download(filepath.Join(h.docsDir, "analises", file))
}
