package dto

// LoginRequest credenciais enviadas pela tela de login.
// Nenhum dos campos é verificado: o login sempre sucede (mock).
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse token de sessão emitido no login.
type LoginResponse struct {
	Token    string `json:"token"`
	Operator string `json:"operator"`
}
