package repository

import "github.com/hortidev/quitanda-api/internal/domain/entity"

// ProductRepository leitura do catálogo de produtos.
type ProductRepository interface {
	List() ([]entity.Product, error)
	// GetByID devolve nil (sem erro) quando o produto não existe;
	// não há integridade referencial entre transações e catálogo.
	GetByID(id int64) (*entity.Product, error)
}

// ClientRepository leitura do cadastro de clientes.
type ClientRepository interface {
	List() ([]entity.Client, error)
	GetByID(id int64) (*entity.Client, error)
}

// SupplierRepository leitura do cadastro de fornecedores.
type SupplierRepository interface {
	List() ([]entity.Supplier, error)
	GetByID(id int64) (*entity.Supplier, error)
}
