package repository

import "github.com/hortidev/quitanda-api/internal/domain/entity"

// TransactionRepository acesso de leitura ao histórico de movimentações.
// As implementações devolvem snapshots imutáveis; nenhuma operação da
// aplicação grava movimentações (os "saves" são simulados).
type TransactionRepository interface {
	// ListAll devolve o histórico completo em ordem de geração
	// (cronológica ascendente, ids sequenciais).
	ListAll() ([]entity.Transaction, error)
}
