// Package memory fornece a massa de dados em memória da aplicação: o catálogo
// estático de produtos/clientes/fornecedores e o gerador do histórico sintético
// de movimentações. Tudo é criado uma vez no arranque; as operações de
// "salvar" da aplicação nunca alteram estes dados.
package memory

import (
	"github.com/shopspring/decimal"

	"github.com/hortidev/quitanda-api/internal/domain/entity"
)

// Catalog snapshot imutável dos dados de referência.
type Catalog struct {
	Products  []entity.Product
	Clients   []entity.Client
	Suppliers []entity.Supplier
}

// NewCatalog monta o catálogo de demonstração da quitanda.
func NewCatalog() *Catalog {
	return &Catalog{
		Products:  seedProducts(),
		Clients:   seedClients(),
		Suppliers: seedSuppliers(),
	}
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Mamão Papaya", Stock: 45, Unit: "cx", Image: "🥭", BuyPrice: price(15), SellPrice: price(23), SupplierID: 101},
		{ID: 2, Name: "Mamão Papaya", Stock: 30, Unit: "cx", Image: "🥭", BuyPrice: price(14), SellPrice: price(22), SupplierID: 103},
		{ID: 3, Name: "Banana Prata", Stock: 120, Unit: "kg", Image: "🍌", BuyPrice: price(20), SellPrice: price(35), SupplierID: 101},
		{ID: 4, Name: "Banana Prata", Stock: 80, Unit: "kg", Image: "🍌", BuyPrice: price(18), SellPrice: price(32), SupplierID: 102},
		{ID: 5, Name: "Morango", Stock: 15, Unit: "bdja", Image: "🍓", BuyPrice: price(8), SellPrice: price(15), SupplierID: 101},
		{ID: 6, Name: "Morango", Stock: 25, Unit: "bdja", Image: "🍓", BuyPrice: price(9), SellPrice: price(16), SupplierID: 103},
		{ID: 7, Name: "Abacaxi", Stock: 50, Unit: "un", Image: "🍍", BuyPrice: price(5), SellPrice: price(8), SupplierID: 101},
		{ID: 8, Name: "Melancia", Stock: 35, Unit: "un", Image: "🍉", BuyPrice: price(12), SellPrice: price(20), SupplierID: 102},
		{ID: 9, Name: "Uva Itália", Stock: 40, Unit: "kg", Image: "🍇", BuyPrice: price(15), SellPrice: price(25), SupplierID: 103},
		{ID: 10, Name: "Maçã Fuji", Stock: 60, Unit: "kg", Image: "🍎", BuyPrice: price(10), SellPrice: price(18), SupplierID: 101},
	}
}

func seedClients() []entity.Client {
	return []entity.Client{
		{ID: 1, Name: "Mercadinho da Esquina", Contact: "(11) 98765-4321", Doc: "123.456.789-00", DocType: "CPF", Email: "mercado@exemplo.com"},
		{ID: 2, Name: "Restaurante Sabor", Contact: "(21) 91234-5678", Doc: "000.111.222-33", DocType: "CPF", Email: "sabor@exemplo.com"},
		{ID: 3, Name: "Padaria Pão Quente", Contact: "(31) 99999-1111", Doc: "444.555.666-77", DocType: "CPF", Email: "padaria@exemplo.com"},
	}
}

func seedSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{ID: 101, Name: "Hortifruti Central", Contact: "(31) 95555-4444", Doc: "99.999.999/0001-00", DocType: "CNPJ", Email: "horti@exemplo.com"},
		{ID: 102, Name: "Distribuidora do Zé", Contact: "(41) 96666-3333", Doc: "111.222.333-44", DocType: "CPF", Email: "ze@exemplo.com"},
		{ID: 103, Name: "Frutas Tropicais Ltda", Contact: "(21) 97777-8888", Doc: "88.888.888/0001-88", DocType: "CNPJ", Email: "tropicais@exemplo.com"},
	}
}
