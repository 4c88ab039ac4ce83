package entity

// Supplier fornecedor cadastrado (origem das compras e proveniência das perdas).
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Doc     string `json:"doc"`
	DocType string `json:"docType"` // CPF | CNPJ
	Email   string `json:"email"`
}
