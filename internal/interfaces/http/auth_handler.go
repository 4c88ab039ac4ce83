package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/auth"
	"github.com/hortidev/quitanda-api/internal/application/dto"
)

// AuthHandler trata o login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login emite um token de sessão. POST /api/auth/login
//
// Qualquer credencial é aceita (comportamento do produto); o body pode até
// estar vazio. A resposta traz o token Bearer para as rotas protegidas.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	// Body vazio ou malformado vira credencial vazia, que também loga.
	_ = c.BodyParser(&in)

	out, err := h.uc.Login(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
