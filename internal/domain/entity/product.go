package entity

import "github.com/shopspring/decimal"

// Product produto do catálogo da quitanda.
// Stock é o saldo em mãos exibido no estoque; as movimentações simuladas não o
// alteram. BuyPrice/SellPrice são preços de referência usados na geração de
// dados e como default dos formulários, não impostos às transações.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Stock      int             `json:"stock"`
	Unit       string          `json:"unit"`  // cx, kg, bdja, un
	Image      string          `json:"image"` // glifo emoji exibido no card
	BuyPrice   decimal.Decimal `json:"buyPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	SupplierID int64           `json:"supplierId,omitempty"`
}
