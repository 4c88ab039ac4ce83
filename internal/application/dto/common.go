package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SaveResultDTO resultado de uma operação de salvar simulada.
// O payload é registrado no log; nada é persistido.
type SaveResultDTO struct {
	Status  string `json:"status"` // sempre "ok"
	Message string `json:"message"`
}
