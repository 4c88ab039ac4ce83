package usecase

import (
	"fmt"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/domain"
	"github.com/hortidev/quitanda-api/internal/domain/entity"
	"github.com/hortidev/quitanda-api/internal/domain/report"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
)

// StockUseCase lista o catálogo de produtos e monta a ficha de estoque
// (totais do período + histórico) de um produto.
type StockUseCase struct {
	txRepo       repository.TransactionRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *StockUseCase {
	return &StockUseCase{txRepo: txRepo, productRepo: productRepo, supplierRepo: supplierRepo}
}

// ListProducts devolve o catálogo com o nome do fornecedor resolvido.
func (uc *StockUseCase) ListProducts() ([]dto.ProductDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("estoque: listar produtos: %w", err)
	}
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, fmt.Errorf("estoque: listar fornecedores: %w", err)
	}
	names := make(map[int64]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p, names[p.SupplierID]))
	}
	return out, nil
}

// GetProductStats monta a ficha do produto no período [inicio, fim].
// Devolve ErrNotFound quando o produto não está no catálogo; os totais
// seguem a agregação por produto sobre o histórico filtrado.
func (uc *StockUseCase) GetProductStats(id int64, inicio, fim string) (*dto.ProductStatsDTO, error) {
	inicio, fim = DefaultRange(inicio, fim)

	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("estoque: buscar produto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var supplierName string
	if product.SupplierID != 0 {
		supplier, err := uc.supplierRepo.GetByID(product.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("estoque: buscar fornecedor: %w", err)
		}
		if supplier != nil {
			supplierName = supplier.Name
		}
	}

	txs, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("estoque: listar movimentações: %w", err)
	}
	filtered := report.FilterByRange(txs, inicio, fim)
	stats := report.AggregateByProduct(filtered, id)

	return &dto.ProductStatsDTO{
		Product:   toProductDTO(*product, supplierName),
		Inicio:    inicio,
		Fim:       fim,
		Sold:      stats.Sold,
		Bought:    stats.Bought,
		Lost:      stats.Lost,
		Result:    stats.Result,
		SoldQtd:   stats.SoldQtd,
		BoughtQtd: stats.BoughtQtd,
		LostQtd:   stats.LostQtd,
		History:   toTransactionDTOs(stats.History),
	}, nil
}

func toProductDTO(p entity.Product, supplierName string) dto.ProductDTO {
	return dto.ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Stock:        p.Stock,
		Unit:         p.Unit,
		Image:        p.Image,
		BuyPrice:     p.BuyPrice,
		SellPrice:    p.SellPrice,
		SupplierID:   p.SupplierID,
		SupplierName: supplierName,
	}
}
