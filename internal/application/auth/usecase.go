// Package auth implementa o login da aplicação.
//
// O contrato do produto é explícito: a tela de login aceita qualquer entrada e
// sucede imediatamente — não há credenciais armazenadas nem verificação. O que
// o caso de uso entrega é um token de sessão assinado (JWT) que o middleware
// exige nas rotas protegidas; o token é um identificador de sessão, não uma
// medida de segurança.
package auth

import (
	"github.com/google/uuid"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/pkg/jwt"
	"github.com/hortidev/quitanda-api/pkg/logger"
)

// JWTConfig configuração para geração dos tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg, log: log}
}

// Login emite um token de sessão para qualquer credencial recebida.
// A senha é ignorada; o nome vazio assume "Operador".
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	operator := in.Name
	if operator == "" {
		operator = "Operador"
	}

	sessionID := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, operator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sessionId", sessionID).
		Str("operator", operator).
		Msg("login aceito")

	return &dto.LoginResponse{Token: token, Operator: operator}, nil
}
