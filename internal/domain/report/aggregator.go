// Package report implementa o agregador financeiro de movimentações: o filtro
// por intervalo de datas e os totais do período, globais e por produto.
// Todas as funções são puras e percorrem a lista uma única vez.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/hortidev/quitanda-api/internal/domain/entity"
)

// PeriodTotals totais globais de um período: entradas (vendas), saídas
// (compras), perdas e o saldo resultante. Saldo pode ser negativo.
type PeriodTotals struct {
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Perdas   decimal.Decimal `json:"perdas"`
	Saldo    decimal.Decimal `json:"saldo"`
}

// ProductStats totais de um produto no período, com o histórico filtrado
// usado na ficha de estoque.
type ProductStats struct {
	Sold      decimal.Decimal      `json:"sold"`
	Bought    decimal.Decimal      `json:"bought"`
	Lost      decimal.Decimal      `json:"lost"`
	Result    decimal.Decimal      `json:"result"` // sold - bought - lost
	SoldQtd   int                  `json:"soldQtd"`
	BoughtQtd int                  `json:"boughtQtd"`
	LostQtd   int                  `json:"lostQtd"`
	History   []entity.Transaction `json:"history"` // ordem original preservada
}

// FilterByRange devolve a subsequência de transações com start <= date <= end,
// limites inclusivos, preservando a ordem relativa original.
//
// A comparação é lexicográfica sobre as strings ISO; start > end produz uma
// lista vazia, comportamento que os chamadores dependem (picker invertido).
func FilterByRange(txs []entity.Transaction, start, end string) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date >= start && t.Date <= end {
			out = append(out, t)
		}
	}
	return out
}

// AggregateGlobal soma os totais por tipo sobre a lista já filtrada.
// Tipos fora dos três enumerados não contribuem para nenhuma soma.
// Lista vazia devolve todos os valores em zero.
func AggregateGlobal(txs []entity.Transaction) PeriodTotals {
	var entradas, saidas, perdas decimal.Decimal
	for _, t := range txs {
		switch t.Type {
		case entity.TypeVenda:
			entradas = entradas.Add(t.Total)
		case entity.TypeCompra:
			saidas = saidas.Add(t.Total)
		case entity.TypePerda:
			perdas = perdas.Add(t.Total)
		}
	}
	return PeriodTotals{
		Entradas: entradas,
		Saidas:   saidas,
		Perdas:   perdas,
		Saldo:    entradas.Sub(saidas).Sub(perdas),
	}
}

// AggregateByProduct restringe a lista ao produto indicado e computa, numa
// única passada, as somas monetárias e de quantidade por tipo, o resultado
// líquido e o histórico (na ordem original, usado como razão cronológica).
func AggregateByProduct(txs []entity.Transaction, productID int64) ProductStats {
	history := make([]entity.Transaction, 0)
	var sold, bought, lost decimal.Decimal
	var soldQtd, boughtQtd, lostQtd int

	for _, t := range txs {
		if t.ProductID != productID {
			continue
		}
		history = append(history, t)
		switch t.Type {
		case entity.TypeVenda:
			sold = sold.Add(t.Total)
			soldQtd += t.Qtd
		case entity.TypeCompra:
			bought = bought.Add(t.Total)
			boughtQtd += t.Qtd
		case entity.TypePerda:
			lost = lost.Add(t.Total)
			lostQtd += t.Qtd
		}
	}

	return ProductStats{
		Sold:      sold,
		Bought:    bought,
		Lost:      lost,
		Result:    sold.Sub(bought).Sub(lost),
		SoldQtd:   soldQtd,
		BoughtQtd: boughtQtd,
		LostQtd:   lostQtd,
		History:   history,
	}
}
