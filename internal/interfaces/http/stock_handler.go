package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/usecase"
)

// StockHandler trata a listagem de estoque e a ficha de produto.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListProducts devolve o catálogo com saldos. GET /api/estoque
func (h *StockHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetProductStats devolve a ficha do produto no período.
// GET /api/estoque/:id?inicio=YYYY-MM-DD&fim=YYYY-MM-DD
func (h *StockHandler) GetProductStats(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "id de produto inválido")
	}

	stats, err := h.uc.GetProductStats(id, c.Query("inicio"), c.Query("fim"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(stats)
}
