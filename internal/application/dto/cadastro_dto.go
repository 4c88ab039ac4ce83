package dto

import "github.com/shopspring/decimal"

// SaveProductRequest formulário de produto (criar ou editar).
// ID zero indica criação; não-zero, edição.
type SaveProductRequest struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name" validate:"required"`
	Unit       string          `json:"unit" validate:"required"`
	Stock      int             `json:"stock" validate:"min=0"`
	Image      string          `json:"image"`
	BuyPrice   decimal.Decimal `json:"buyPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	SupplierID int64           `json:"supplierId"`
}

// SaveEntityRequest formulário de cliente ou fornecedor.
type SaveEntityRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Doc     string `json:"doc"`
	DocType string `json:"docType" validate:"omitempty,oneof=CPF CNPJ"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// RegisterTransactionRequest formulário rápido de venda/compra/perda do
// dashboard. O registro é simulado: validado, logado e descartado.
type RegisterTransactionRequest struct {
	Type       string          `json:"type" validate:"required,oneof=venda compra perda"`
	ProductID  int64           `json:"productId" validate:"required,min=1"`
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	SupplierID int64           `json:"supplierId"`
	Reason     string          `json:"reason"` // exigido apenas para perda
}
