package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/domain"
)

func newCadastro() *usecase.CadastroUseCase {
	return usecase.NewCadastroUseCase(testLogger())
}

func TestSaveProduct_Sucesso(t *testing.T) {
	uc := newCadastro()

	out, err := uc.SaveProduct(dto.SaveProductRequest{
		Name: "Abacaxi", Unit: "un",
		BuyPrice: dec("5"), SellPrice: dec("8"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "Abacaxi cadastrado com sucesso", out.Message)
}

func TestSaveProduct_EdicaoMudaMensagem(t *testing.T) {
	uc := newCadastro()

	out, err := uc.SaveProduct(dto.SaveProductRequest{
		ID: 7, Name: "Abacaxi", Unit: "un",
	})
	require.NoError(t, err)

	assert.Equal(t, "Abacaxi atualizado com sucesso", out.Message)
}

func TestSaveProduct_NomeObrigatorio(t *testing.T) {
	uc := newCadastro()

	_, err := uc.SaveProduct(dto.SaveProductRequest{Unit: "kg"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveClient_EmailInvalido(t *testing.T) {
	uc := newCadastro()

	_, err := uc.SaveClient(dto.SaveEntityRequest{
		Name:  "Mercadinho da Esquina",
		Email: "não-é-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveSupplier_Sucesso(t *testing.T) {
	uc := newCadastro()

	out, err := uc.SaveSupplier(dto.SaveEntityRequest{
		Name:    "Hortifruti Central",
		Contact: "(31) 95555-4444",
		Doc:     "99.999.999/0001-00",
		DocType: "CNPJ",
		Email:   "horti@exemplo.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hortifruti Central cadastrado com sucesso", out.Message)
}

func TestRegisterTransaction_Venda(t *testing.T) {
	uc := newCadastro()

	out, err := uc.RegisterTransaction(dto.RegisterTransactionRequest{
		Type: "venda", ProductID: 1, Quantity: 5, TotalPrice: dec("115"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Venda registrada com sucesso", out.Message)
}

func TestRegisterTransaction_TipoInvalido(t *testing.T) {
	uc := newCadastro()

	_, err := uc.RegisterTransaction(dto.RegisterTransactionRequest{
		Type: "doacao", ProductID: 1, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterTransaction_QuantidadeObrigatoria(t *testing.T) {
	uc := newCadastro()

	_, err := uc.RegisterTransaction(dto.RegisterTransactionRequest{
		Type: "perda", ProductID: 1, Reason: "Estragou",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
