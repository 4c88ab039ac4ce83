package dto

import "github.com/shopspring/decimal"

// CartItemDTO item do carrinho do PDV.
type CartItemDTO struct {
	ProductID int64           `json:"productId" validate:"required,min=1"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

// FinalizarVendaRequest fechamento do carrinho no PDV.
// PaymentValue zero significa pagamento exato (sem troco).
type FinalizarVendaRequest struct {
	ClientID      int64           `json:"clientId"`
	Items         []CartItemDTO   `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=dinheiro debito credito pix"`
	PaymentValue  decimal.Decimal `json:"paymentValue"`
}

// FinalizarVendaResponse totais calculados do fechamento simulado.
type FinalizarVendaResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	SubtotalLabel string          `json:"subtotalLabel"` // R$ 1.234,56
	ItemCount     int             `json:"itemCount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentValue  decimal.Decimal `json:"paymentValue"`
	Troco         decimal.Decimal `json:"troco"`
	Message       string          `json:"message"`
}
