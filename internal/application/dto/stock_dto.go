package dto

import "github.com/shopspring/decimal"

// ProductDTO produto do catálogo com o nome do fornecedor resolvido.
type ProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Stock        int             `json:"stock"`
	Unit         string          `json:"unit"`
	Image        string          `json:"image"`
	BuyPrice     decimal.Decimal `json:"buyPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	SupplierID   int64           `json:"supplierId,omitempty"`
	SupplierName string          `json:"supplierName,omitempty"`
}

// ProductStatsDTO resposta de GET /api/estoque/:id — os totais do produto no
// período e o histórico filtrado, na ordem cronológica de geração.
type ProductStatsDTO struct {
	Product ProductDTO `json:"product"`
	Inicio  string     `json:"inicio"`
	Fim     string     `json:"fim"`

	Sold      decimal.Decimal `json:"sold"`
	Bought    decimal.Decimal `json:"bought"`
	Lost      decimal.Decimal `json:"lost"`
	Result    decimal.Decimal `json:"result"`
	SoldQtd   int             `json:"soldQtd"`
	BoughtQtd int             `json:"boughtQtd"`
	LostQtd   int             `json:"lostQtd"`

	History []TransactionDTO `json:"history"`
}

// ClientDTO cliente do cadastro.
type ClientDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Doc     string `json:"doc"`
	DocType string `json:"docType"`
	Email   string `json:"email"`
}

// SupplierDTO fornecedor do cadastro.
type SupplierDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Doc     string `json:"doc"`
	DocType string `json:"docType"`
	Email   string `json:"email"`
}
