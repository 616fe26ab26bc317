package http

import (
	"embed"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/Apeirom/rental-manager/pkg/brformat"
)

//go:embed views
var viewsFS embed.FS

// NewViewsEngine monta o motor de templates embutido no binário, com os
// helpers de formatação brasileira disponíveis nas views.
func NewViewsEngine() *html.Engine {
	engine := html.NewFileSystem(nethttp.FS(viewsFS), ".html")
	engine.Directory = "/views"
	engine.AddFunc("money", func(d decimal.Decimal) string {
		return brformat.Money(d)
	})
	engine.AddFunc("phone", func(raw string) string {
		return brformat.Phone(raw)
	})
	engine.AddFunc("dateBR", func(iso string) string {
		if br, err := brformat.ISOToBR(iso); err == nil {
			return br
		}
		return iso
	})
	engine.AddFunc("orND", func(s string) string {
		if s == "" {
			return "N/D"
		}
		return s
	})
	return engine
}
