package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
)

// PDVHandler trata o fechamento de venda do ponto de venda.
type PDVHandler struct {
	uc *usecase.PDVUseCase
}

// NewPDVHandler constrói o handler.
func NewPDVHandler(uc *usecase.PDVUseCase) *PDVHandler {
	return &PDVHandler{uc: uc}
}

// Finalizar fecha o carrinho. POST /api/pdv/finalizar
//
// Calcula subtotal, contagem de itens e troco; a venda é simulada (log) e o
// estoque não é decrementado.
func (h *PDVHandler) Finalizar(c *fiber.Ctx) error {
	var in dto.FinalizarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body inválido")
	}
	out, err := h.uc.Finalizar(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
