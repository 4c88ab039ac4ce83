package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/usecase"
)

// DashboardHandler trata os endpoints do dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResumo devolve os totais do período e o razão filtrado.
// GET /api/dashboard/resumo?inicio=YYYY-MM-DD&fim=YYYY-MM-DD
//
// Sem parâmetros, assume os últimos 21 dias até hoje (janela padrão do
// seletor de datas). Limites inclusivos; inicio > fim devolve tudo zerado.
func (h *DashboardHandler) GetResumo(c *fiber.Ctx) error {
	resumo, err := h.uc.GetResumo(c.Query("inicio"), c.Query("fim"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resumo)
}
