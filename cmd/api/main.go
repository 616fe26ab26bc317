package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/internal/infrastructure/pdf"
	httpRouter "github.com/Apeirom/rental-manager/internal/interfaces/http"
	"github.com/Apeirom/rental-manager/pkg/config"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ds := excel.New(cfg.Data.Dir, log)
	if err := ds.EnsureFiles(); err != nil {
		log.Fatal().Err(err).Msg("preparar planilhas de dados")
	}
	store, err := rental.NewStore(ds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("carregar dados das planilhas")
	}

	engine := analysis.NewEngine(store)
	receipts := pdf.NewReceiptGenerator()
	handler := httpRouter.NewHandler(store, engine, receipts, log, cfg.Data.DocsDir)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViewsEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, handler)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	// Última chance de persistir o que está em memória
	if issues := store.SaveAll(); len(issues) > 0 {
		for _, i := range issues {
			log.Error().Str("file", i.File).Err(i.Err).Msg("falha ao salvar planilha no desligamento")
		}
	}
}
