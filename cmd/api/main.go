package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hortidev/quitanda-api/internal/application/auth"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/infrastructure/memory"
	infrapdf "github.com/hortidev/quitanda-api/internal/infrastructure/pdf"
	httpRouter "github.com/hortidev/quitanda-api/internal/interfaces/http"
	"github.com/hortidev/quitanda-api/pkg/config"
	"github.com/hortidev/quitanda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Massa de dados em memória: catálogo estático + histórico sintético.
	// Tudo imutável após o arranque; os "saves" da API são simulados.
	catalog := memory.NewCatalog()
	txs := memory.GenerateTransactions(cfg.Mock.Seed, time.Now(), cfg.Mock.Days)
	log.Info().
		Int64("seed", cfg.Mock.Seed).
		Int("dias", cfg.Mock.Days).
		Int("movimentacoes", len(txs)).
		Msg("histórico sintético gerado")

	txRepo := memory.NewTransactionRepository(txs)
	productRepo := memory.NewProductRepository(catalog)
	clientRepo := memory.NewClientRepository(catalog)
	supplierRepo := memory.NewSupplierRepository(catalog)

	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	dashboardUC := usecase.NewDashboardUseCase(txRepo)
	stockUC := usecase.NewStockUseCase(txRepo, productRepo, supplierRepo)
	cadastroUC := usecase.NewCadastroUseCase(log)
	pdvUC := usecase.NewPDVUseCase(clientRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(txRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Quitanda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		StockUC:      stockUC,
		CadastroUC:   cadastroUC,
		PDVUC:        pdvUC,
		ReportUC:     reportUC,
		ClientRepo:   clientRepo,
		SupplierRepo: supplierRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

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
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
