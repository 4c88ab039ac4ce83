package memory

import (
	"github.com/hortidev/quitanda-api/internal/domain/entity"
)

// TransactionRepository repositório em memória sobre o histórico gerado.
type TransactionRepository struct {
	txs []entity.Transaction
}

// NewTransactionRepository cria o repositório sobre um snapshot imutável.
func NewTransactionRepository(txs []entity.Transaction) *TransactionRepository {
	return &TransactionRepository{txs: txs}
}

// ListAll devolve o histórico completo em ordem de geração.
func (r *TransactionRepository) ListAll() ([]entity.Transaction, error) {
	return r.txs, nil
}

// ProductRepository repositório em memória do catálogo de produtos.
type ProductRepository struct {
	products []entity.Product
}

// NewProductRepository cria o repositório sobre o catálogo.
func NewProductRepository(c *Catalog) *ProductRepository {
	return &ProductRepository{products: c.Products}
}

// List devolve todos os produtos do catálogo.
func (r *ProductRepository) List() ([]entity.Product, error) {
	return r.products, nil
}

// GetByID devolve o produto ou nil se não existir.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ClientRepository repositório em memória do cadastro de clientes.
type ClientRepository struct {
	clients []entity.Client
}

// NewClientRepository cria o repositório sobre o catálogo.
func NewClientRepository(c *Catalog) *ClientRepository {
	return &ClientRepository{clients: c.Clients}
}

// List devolve todos os clientes.
func (r *ClientRepository) List() ([]entity.Client, error) {
	return r.clients, nil
}

// GetByID devolve o cliente ou nil se não existir.
func (r *ClientRepository) GetByID(id int64) (*entity.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == id {
			c := r.clients[i]
			return &c, nil
		}
	}
	return nil, nil
}

// SupplierRepository repositório em memória do cadastro de fornecedores.
type SupplierRepository struct {
	suppliers []entity.Supplier
}

// NewSupplierRepository cria o repositório sobre o catálogo.
func NewSupplierRepository(c *Catalog) *SupplierRepository {
	return &SupplierRepository{suppliers: c.Suppliers}
}

// List devolve todos os fornecedores.
func (r *SupplierRepository) List() ([]entity.Supplier, error) {
	return r.suppliers, nil
}

// GetByID devolve o fornecedor ou nil se não existir.
func (r *SupplierRepository) GetByID(id int64) (*entity.Supplier, error) {
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			s := r.suppliers[i]
			return &s, nil
		}
	}
	return nil, nil
}
