package entity

// Client cliente cadastrado (comprador no PDV).
// Doc é CPF ou CNPJ já mascarado; a validação é apenas de formato.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"` // telefone mascarado
	Doc     string `json:"doc"`
	DocType string `json:"docType"` // CPF | CNPJ
	Email   string `json:"email"`
}
