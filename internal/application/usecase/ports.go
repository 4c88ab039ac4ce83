package usecase

import (
	"context"

	"github.com/hortidev/quitanda-api/internal/domain/report"
)

// ProductReportRow linha da tabela por produto do relatório de período.
type ProductReportRow struct {
	ProductID int64
	Name      string // nome denormalizado do histórico
	Stats     report.ProductStats
}

// PeriodReportData dados prontos para a renderização do relatório.
type PeriodReportData struct {
	Inicio string
	Fim    string
	Label  string
	Totals report.PeriodTotals
	Rows   []ProductReportRow
}

// PeriodReportPDFGenerator porta de saída para a renderização do PDF.
// Implementada em internal/infrastructure/pdf.
type PeriodReportPDFGenerator interface {
	GeneratePeriodReport(ctx context.Context, data *PeriodReportData) ([]byte, error)
}
