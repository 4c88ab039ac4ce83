package usecase

import (
	"fmt"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/domain"
	"github.com/hortidev/quitanda-api/pkg/logger"
	"github.com/hortidev/quitanda-api/pkg/validator"
)

// CadastroUseCase trata os formulários de cadastro (produto, cliente,
// fornecedor) e o registro rápido de venda/compra/perda.
//
// Contrato deliberado do mock: o payload é validado e registrado no log,
// mas nada é persistido — os catálogos e o histórico permanecem intactos.
type CadastroUseCase struct {
	log *logger.Logger
}

// NewCadastroUseCase constrói o caso de uso.
func NewCadastroUseCase(log *logger.Logger) *CadastroUseCase {
	return &CadastroUseCase{log: log}
}

// SaveProduct simula o salvamento de um produto.
func (uc *CadastroUseCase) SaveProduct(in dto.SaveProductRequest) (*dto.SaveResultDTO, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}

	uc.log.Info().
		Str("cadastro", "produto").
		Interface("payload", in).
		Msg("produto salvo (simulado)")

	verb := "cadastrado"
	if in.ID != 0 {
		verb = "atualizado"
	}
	return &dto.SaveResultDTO{
		Status:  "ok",
		Message: fmt.Sprintf("%s %s com sucesso", in.Name, verb),
	}, nil
}

// SaveClient simula o salvamento de um cliente.
func (uc *CadastroUseCase) SaveClient(in dto.SaveEntityRequest) (*dto.SaveResultDTO, error) {
	return uc.saveEntity("cliente", in)
}

// SaveSupplier simula o salvamento de um fornecedor.
func (uc *CadastroUseCase) SaveSupplier(in dto.SaveEntityRequest) (*dto.SaveResultDTO, error) {
	return uc.saveEntity("fornecedor", in)
}

func (uc *CadastroUseCase) saveEntity(kind string, in dto.SaveEntityRequest) (*dto.SaveResultDTO, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}

	uc.log.Info().
		Str("cadastro", kind).
		Interface("payload", in).
		Msg("entidade salva (simulado)")

	verb := "cadastrado"
	if in.ID != 0 {
		verb = "atualizado"
	}
	return &dto.SaveResultDTO{
		Status:  "ok",
		Message: fmt.Sprintf("%s %s com sucesso", in.Name, verb),
	}, nil
}

// RegisterTransaction simula o registro rápido de venda/compra/perda do
// dashboard. Como nos demais cadastros, a movimentação não entra no histórico.
func (uc *CadastroUseCase) RegisterTransaction(in dto.RegisterTransactionRequest) (*dto.SaveResultDTO, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}

	uc.log.Info().
		Str("cadastro", "transacao").
		Str("tipo", in.Type).
		Interface("payload", in).
		Msg("movimentação registrada (simulado)")

	labels := map[string]string{"venda": "Venda", "compra": "Compra", "perda": "Perda"}
	return &dto.SaveResultDTO{
		Status:  "ok",
		Message: fmt.Sprintf("%s registrada com sucesso", labels[in.Type]),
	}, nil
}
