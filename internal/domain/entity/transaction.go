package entity

import "github.com/shopspring/decimal"

// TransactionType tipo de movimentação de estoque.
type TransactionType string

const (
	TypeVenda  TransactionType = "venda"
	TypeCompra TransactionType = "compra"
	TypePerda  TransactionType = "perda"
)

// Transaction registro imutável de uma movimentação de estoque.
//
// Date é sempre uma string ISO YYYY-MM-DD de largura fixa; as comparações de
// intervalo são lexicográficas e só valem porque o formato é zero-padded.
// Product guarda o nome do produto no momento da criação (snapshot): se o
// produto for renomeado depois, o histórico mantém o nome antigo.
type Transaction struct {
	ID         int64           `json:"id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Type       TransactionType `json:"type"`
	ProductID  int64           `json:"productId"`
	Product    string          `json:"product"` // nome denormalizado na criação
	Qtd        int             `json:"qtd"`
	Total      decimal.Decimal `json:"total"` // arredondado a 2 casas na criação
	Reason     string          `json:"reason,omitempty"`
	ClientID   int64           `json:"clientId,omitempty"`
	SupplierID int64           `json:"supplierId,omitempty"`
}
