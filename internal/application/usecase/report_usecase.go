package usecase

import (
	"context"
	"fmt"

	"github.com/hortidev/quitanda-api/internal/domain/entity"
	"github.com/hortidev/quitanda-api/internal/domain/report"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
)

// ReportUseCase gera o relatório de período em PDF: totais globais mais uma
// tabela por produto, sobre o mesmo filtro inclusivo do dashboard.
type ReportUseCase struct {
	txRepo repository.TransactionRepository
	pdfGen PeriodReportPDFGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(txRepo repository.TransactionRepository, pdfGen PeriodReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{txRepo: txRepo, pdfGen: pdfGen}
}

// GeneratePeriodReport agrega o período e devolve os bytes do PDF.
func (uc *ReportUseCase) GeneratePeriodReport(ctx context.Context, inicio, fim string) ([]byte, error) {
	inicio, fim = DefaultRange(inicio, fim)

	txs, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("relatório: listar movimentações: %w", err)
	}
	filtered := report.FilterByRange(txs, inicio, fim)

	data := &PeriodReportData{
		Inicio: inicio,
		Fim:    fim,
		Label:  PeriodLabel(inicio, fim),
		Totals: report.AggregateGlobal(filtered),
		Rows:   buildProductRows(filtered),
	}

	pdf, err := uc.pdfGen.GeneratePeriodReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("relatório: gerar pdf: %w", err)
	}
	return pdf, nil
}

// buildProductRows agrega por produto na ordem de primeira aparição no
// período, usando o nome capturado na movimentação.
func buildProductRows(filtered []entity.Transaction) []ProductReportRow {
	seen := make(map[int64]bool)
	order := make([]int64, 0, 8)
	names := make(map[int64]string)
	for _, t := range filtered {
		if !seen[t.ProductID] {
			seen[t.ProductID] = true
			order = append(order, t.ProductID)
			names[t.ProductID] = t.Product
		}
	}

	rows := make([]ProductReportRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, ProductReportRow{
			ProductID: id,
			Name:      names[id],
			Stats:     report.AggregateByProduct(filtered, id),
		})
	}
	return rows
}
