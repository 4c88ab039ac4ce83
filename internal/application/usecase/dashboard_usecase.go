// Package usecase contém os casos de uso da aplicação: dashboard, estoque,
// cadastros simulados, PDV e relatório de período.
package usecase

import (
	"fmt"
	"time"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/domain/entity"
	"github.com/hortidev/quitanda-api/internal/domain/report"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
	"github.com/hortidev/quitanda-api/pkg/format"
)

// defaultRangeDays janela padrão do filtro de datas quando o chamador não
// envia inicio/fim: últimos 21 dias até hoje, inclusive.
const defaultRangeDays = 21

// DashboardUseCase calcula o resumo financeiro do período para o dashboard.
// Fonte de dados: TransactionRepository (snapshot imutável); todo o cálculo
// é uma passada síncrona sobre a lista filtrada.
type DashboardUseCase struct {
	txRepo repository.TransactionRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{txRepo: txRepo}
}

// GetResumo filtra o histórico pelo intervalo inclusivo [inicio, fim] e
// devolve os totais globais mais a lista de movimentações do razão.
// Inicio/fim vazios assumem a janela padrão.
func (uc *DashboardUseCase) GetResumo(inicio, fim string) (*dto.DashboardResumoDTO, error) {
	inicio, fim = DefaultRange(inicio, fim)

	txs, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar movimentações: %w", err)
	}

	filtered := report.FilterByRange(txs, inicio, fim)
	totals := report.AggregateGlobal(filtered)

	return &dto.DashboardResumoDTO{
		Inicio:        inicio,
		Fim:           fim,
		Label:         PeriodLabel(inicio, fim),
		Entradas:      totals.Entradas,
		Saidas:        totals.Saidas,
		Perdas:        totals.Perdas,
		Saldo:         totals.Saldo,
		NumMovimentos: len(filtered),
		Movimentos:    toTransactionDTOs(filtered),
	}, nil
}

// DefaultRange aplica a janela padrão quando inicio ou fim estão vazios.
func DefaultRange(inicio, fim string) (string, string) {
	if inicio != "" && fim != "" {
		return inicio, fim
	}
	today := time.Now()
	return today.AddDate(0, 0, -defaultRangeDays).Format("2006-01-02"),
		today.Format("2006-01-02")
}

// PeriodLabel devolve a etiqueta legível do período, ex: "11/08/2026 – 01/09/2026".
func PeriodLabel(inicio, fim string) string {
	return format.FormatDate(inicio) + " – " + format.FormatDate(fim)
}

func toTransactionDTOs(txs []entity.Transaction) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, dto.TransactionDTO{
			ID:         t.ID,
			Date:       t.Date,
			DateLabel:  format.FormatDate(t.Date),
			Type:       string(t.Type),
			ProductID:  t.ProductID,
			Product:    t.Product,
			Qtd:        t.Qtd,
			Total:      t.Total,
			TotalLabel: format.Money(t.Total),
			Reason:     t.Reason,
			ClientID:   t.ClientID,
			SupplierID: t.SupplierID,
		})
	}
	return out
}
