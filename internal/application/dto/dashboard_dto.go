package dto

import "github.com/shopspring/decimal"

// TransactionDTO movimentação exibida no razão do dashboard e no histórico
// da ficha de produto.
type TransactionDTO struct {
	ID         int64           `json:"id"`
	Date       string          `json:"date"`      // YYYY-MM-DD
	DateLabel  string          `json:"dateLabel"` // dd/mm/aaaa
	Type       string          `json:"type"`
	ProductID  int64           `json:"productId"`
	Product    string          `json:"product"`
	Qtd        int             `json:"qtd"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"totalLabel"` // R$ 1.234,56
	Reason     string          `json:"reason,omitempty"`
	ClientID   int64           `json:"clientId,omitempty"`
	SupplierID int64           `json:"supplierId,omitempty"`
}

// DashboardResumoDTO resposta de GET /api/dashboard/resumo.
// Totais do período filtrado mais a lista de movimentações do razão.
type DashboardResumoDTO struct {
	Inicio string `json:"inicio"` // YYYY-MM-DD, inclusivo
	Fim    string `json:"fim"`    // YYYY-MM-DD, inclusivo
	Label  string `json:"label"`  // ex: "11/08/2026 – 01/09/2026"

	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Perdas   decimal.Decimal `json:"perdas"`
	Saldo    decimal.Decimal `json:"saldo"` // entradas - saidas - perdas

	NumMovimentos int              `json:"numMovimentos"`
	Movimentos    []TransactionDTO `json:"movimentos"`
}
