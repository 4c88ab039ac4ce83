package memory

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hortidev/quitanda-api/internal/domain/entity"
)

// baseProduct subconjunto fixo do catálogo usado na geração do histórico.
// Os nomes carregam a unidade entre parênteses, como exibidos no razão.
type baseProduct struct {
	id         int64
	name       string
	buyPrice   int64
	sellPrice  int64
	supplierID int64
}

var baseProducts = [3]baseProduct{
	{id: 1, name: "Mamão Papaya (Cx)", buyPrice: 15, sellPrice: 23, supplierID: 101},
	{id: 2, name: "Banana Prata (Cx)", buyPrice: 20, sellPrice: 35, supplierID: 101},
	{id: 3, name: "Morango (Bdja)", buyPrice: 8, sellPrice: 15, supplierID: 101},
}

var transactionTypes = [3]entity.TransactionType{
	entity.TypeVenda, entity.TypeCompra, entity.TypePerda,
}

// clientIDs ids de clientes do catálogo, sorteados nas vendas geradas.
var clientIDs = [3]int64{1, 2, 3}

// supplierIDs ids de fornecedores do catálogo, sorteados nas compras geradas.
var supplierIDs = [3]int64{101, 102, 103}

// GenerateTransactions sintetiza o histórico de movimentações de days dias
// (inclusive hoje), do dia mais antigo ao mais recente, com 2 a 5 transações
// por dia. A mesma seed produz sempre a mesma sequência.
//
// Regras de valor por tipo:
//
//	venda:  qtd * sellPrice * (1 + U(0, 0.10))   — ágio de até 10%
//	compra: qtd * buyPrice  * (1 - U(0, 0.05))   — desconto de até 5%
//	perda:  qtd * buyPrice  * (0.1 + U(0, 0.20)) — baixa a 10–30% do custo
//
// Atribuição: venda recebe um clientId aleatório; compra recebe um supplierId
// aleatório; perda herda o fornecedor padrão do produto e o motivo "Estragou".
func GenerateTransactions(seed int64, today time.Time, days int) []entity.Transaction {
	rng := rand.New(rand.NewSource(seed))
	txs := make([]entity.Transaction, 0, days*4)

	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		perDay := rng.Intn(4) + 2

		for j := 0; j < perDay; j++ {
			prod := baseProducts[rng.Intn(len(baseProducts))]
			txType := transactionTypes[rng.Intn(len(transactionTypes))]
			qtd := rng.Intn(30) + 1

			var factor float64
			var unit int64
			switch txType {
			case entity.TypeVenda:
				unit = prod.sellPrice
				factor = 1 + rng.Float64()*0.1
			case entity.TypeCompra:
				unit = prod.buyPrice
				factor = 1 - rng.Float64()*0.05
			default: // perda
				unit = prod.buyPrice
				factor = 0.1 + rng.Float64()*0.2
			}
			total := decimal.NewFromInt(int64(qtd) * unit).
				Mul(decimal.NewFromFloat(factor)).
				Round(2)

			tx := entity.Transaction{
				ID:        int64(len(txs) + 1),
				Date:      date,
				Type:      txType,
				ProductID: prod.id,
				Product:   prod.name,
				Qtd:       qtd,
				Total:     total,
			}
			switch txType {
			case entity.TypeVenda:
				tx.ClientID = clientIDs[rng.Intn(len(clientIDs))]
			case entity.TypeCompra:
				tx.SupplierID = supplierIDs[rng.Intn(len(supplierIDs))]
			default:
				tx.SupplierID = prod.supplierID
				tx.Reason = "Estragou"
			}
			txs = append(txs, tx)
		}
	}
	return txs
}
