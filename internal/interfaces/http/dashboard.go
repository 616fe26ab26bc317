package http

import "github.com/gofiber/fiber/v2"

// Dashboard exibe o painel com o total de cada coleção.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	return h.render(c, "dashboard", fiber.Map{
		"Counts": h.store.Counts(),
	})
}

// Save grava as oito planilhas e relata arquivo a arquivo o que falhou.
func (h *Handler) Save(c *fiber.Ctx) error {
	issues := h.store.SaveAll()
	type fileIssue struct {
		File    string
		Message string
	}
	out := make([]fileIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, fileIssue{File: i.File, Message: i.Err.Error()})
	}
	return c.Render("save_result", fiber.Map{
		"Issues": out,
		"OK":     len(out) == 0,
	})
}
