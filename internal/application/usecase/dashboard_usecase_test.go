package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositório sobre fixtures fixas.
// ──────────────────────────────────────────────────────────────────────────────

type stubTxRepo struct {
	txs []entity.Transaction
}

func (s *stubTxRepo) ListAll() ([]entity.Transaction, error) { return s.txs, nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixtureTxs() []entity.Transaction {
	return []entity.Transaction{
		{ID: 1, Date: "2024-01-01", Type: entity.TypeVenda, ProductID: 1, Product: "Mamão Papaya (Cx)", Qtd: 5, Total: dec("100")},
		{ID: 2, Date: "2024-01-02", Type: entity.TypeCompra, ProductID: 1, Product: "Mamão Papaya (Cx)", Qtd: 2, Total: dec("40")},
		{ID: 3, Date: "2024-01-03", Type: entity.TypePerda, ProductID: 1, Product: "Mamão Papaya (Cx)", Qtd: 1, Total: dec("10"), Reason: "Estragou"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetResumo
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardGetResumo_PeriodoExplicito(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubTxRepo{txs: fixtureTxs()})

	resumo, err := uc.GetResumo("2024-01-01", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resumo.Inicio)
	assert.Equal(t, "2024-01-02", resumo.Fim)
	assert.Equal(t, "01/01/2024 – 02/01/2024", resumo.Label)

	assert.True(t, resumo.Entradas.Equal(dec("100")))
	assert.True(t, resumo.Saidas.Equal(dec("40")))
	assert.True(t, resumo.Perdas.IsZero())
	assert.True(t, resumo.Saldo.Equal(dec("60")))

	require.Equal(t, 2, resumo.NumMovimentos)
	require.Len(t, resumo.Movimentos, 2)
	assert.Equal(t, "venda", resumo.Movimentos[0].Type)
	assert.Equal(t, "01/01/2024", resumo.Movimentos[0].DateLabel)
	assert.Equal(t, "compra", resumo.Movimentos[1].Type)
}

func TestDashboardGetResumo_PeriodoSemMovimentacao(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubTxRepo{txs: fixtureTxs()})

	resumo, err := uc.GetResumo("2023-01-01", "2023-12-31")
	require.NoError(t, err)

	assert.True(t, resumo.Entradas.IsZero())
	assert.True(t, resumo.Saldo.IsZero())
	assert.Zero(t, resumo.NumMovimentos)
	assert.Empty(t, resumo.Movimentos)
}

func TestDashboardGetResumo_JanelaPadrao(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubTxRepo{txs: fixtureTxs()})

	resumo, err := uc.GetResumo("", "")
	require.NoError(t, err)

	// Janela padrão: hoje-21d .. hoje, inclusive.
	today := time.Now()
	assert.Equal(t, today.Format("2006-01-02"), resumo.Fim)
	assert.Equal(t, today.AddDate(0, 0, -21).Format("2006-01-02"), resumo.Inicio)
}

func TestDashboardGetResumo_IntervaloInvertido(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubTxRepo{txs: fixtureTxs()})

	resumo, err := uc.GetResumo("2024-01-03", "2024-01-01")
	require.NoError(t, err)

	// Não é erro: o filtro lexicográfico devolve vazio e tudo fica zerado.
	assert.Zero(t, resumo.NumMovimentos)
	assert.True(t, resumo.Saldo.IsZero())
}
