package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/auth"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *usecase.DashboardUseCase
	StockUC      *usecase.StockUseCase
	CadastroUC   *usecase.CadastroUseCase
	PDVUC        *usecase.PDVUseCase
	ReportUC     *usecase.ReportUseCase
	ClientRepo   repository.ClientRepository
	SupplierRepo repository.SupplierRepository
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público — aceita qualquer credencial)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem o token de sessão)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumo", dashboardHandler.GetResumo)

	// Estoque
	estoque := protected.Group("/estoque")
	stockHandler := NewStockHandler(deps.StockUC)
	estoque.Get("/", stockHandler.ListProducts)
	estoque.Get("/:id", stockHandler.GetProductStats)

	// Cadastros (saves simulados) e listagens de referência
	cadastros := protected.Group("/cadastros")
	cadastroHandler := NewCadastroHandler(deps.CadastroUC, deps.ClientRepo, deps.SupplierRepo)
	cadastros.Get("/clientes", cadastroHandler.ListClients)
	cadastros.Post("/clientes", cadastroHandler.SaveClient)
	cadastros.Get("/fornecedores", cadastroHandler.ListSuppliers)
	cadastros.Post("/fornecedores", cadastroHandler.SaveSupplier)
	cadastros.Post("/produtos", cadastroHandler.SaveProduct)

	// Registro rápido de venda/compra/perda
	protected.Post("/movimentacoes", cadastroHandler.RegisterTransaction)

	// PDV
	pdv := protected.Group("/pdv")
	pdvHandler := NewPDVHandler(deps.PDVUC)
	pdv.Post("/finalizar", pdvHandler.Finalizar)

	// Relatórios
	relatorios := protected.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC)
	relatorios.Get("/periodo.pdf", reportHandler.PeriodoPDF)
}
