package http

import "github.com/gofiber/fiber/v2"

// Router registra as rotas da interface web.
func Router(app *fiber.App, h *Handler) {
	app.Get("/", h.Dashboard)
	app.Post("/salvar", h.Save)

	tenants := app.Group("/tenants")
	tenants.Get("/", h.TenantList)
	tenants.Get("/new", h.TenantNew)
	tenants.Post("/", h.TenantCreate)
	tenants.Delete("/:id", h.TenantDelete)

	properties := app.Group("/properties")
	properties.Get("/", h.PropertyList)
	properties.Get("/new", h.PropertyNew)
	properties.Post("/", h.PropertyCreate)
	properties.Delete("/:id", h.PropertyDelete)

	agencies := app.Group("/real_estates")
	agencies.Get("/", h.AgencyList)
	agencies.Get("/new", h.AgencyNew)
	agencies.Post("/", h.AgencyCreate)
	agencies.Delete("/:id", h.AgencyDelete)

	guarantors := app.Group("/guarantors")
	guarantors.Get("/", h.GuarantorList)
	guarantors.Get("/new", h.GuarantorNew)
	guarantors.Post("/", h.GuarantorCreate)
	guarantors.Delete("/:id", h.GuarantorDelete)

	insurances := app.Group("/bail_insurances")
	insurances.Get("/", h.BailInsuranceList)
	insurances.Get("/new", h.BailInsuranceNew)
	insurances.Post("/", h.BailInsuranceCreate)
	insurances.Delete("/:id", h.BailInsuranceDelete)

	contracts := app.Group("/contracts")
	contracts.Get("/", h.ContractList)
	contracts.Get("/new", h.ContractNew)
	contracts.Post("/", h.ContractCreate)
	contracts.Post("/:id/encerrar", h.ContractClose)
	contracts.Delete("/:id", h.ContractDelete)

	payments := app.Group("/payments")
	payments.Get("/", h.PaymentList)
	payments.Get("/new", h.PaymentNew)
	payments.Post("/", h.PaymentCreate)
	payments.Get("/:id/recibo", h.PaymentReceipt)
	payments.Delete("/:id", h.PaymentDelete)

	extracts := app.Group("/extracts")
	extracts.Get("/", h.ExtractList)
	extracts.Get("/new", h.ExtractNew)
	extracts.Post("/", h.ExtractCreate)
	extracts.Delete("/:id", h.ExtractDelete)

	analyses := app.Group("/analises")
	analyses.Get("/", h.AnalysisForm)
	analyses.Post("/", h.AnalysisRun)
	analyses.Get("/download/:file", h.AnalysisDownload)
}
