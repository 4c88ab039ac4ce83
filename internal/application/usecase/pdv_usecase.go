package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/domain"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
	"github.com/hortidev/quitanda-api/pkg/format"
	"github.com/hortidev/quitanda-api/pkg/logger"
	"github.com/hortidev/quitanda-api/pkg/validator"
)

// PDVUseCase fecha o carrinho do ponto de venda: calcula subtotal, contagem
// de itens e troco, e simula a finalização (log, sem baixa de estoque).
type PDVUseCase struct {
	clientRepo repository.ClientRepository
	log        *logger.Logger
}

// NewPDVUseCase constrói o caso de uso.
func NewPDVUseCase(clientRepo repository.ClientRepository, log *logger.Logger) *PDVUseCase {
	return &PDVUseCase{clientRepo: clientRepo, log: log}
}

// Finalizar valida o carrinho e devolve os totais do fechamento.
//
// Troco = max(0, valor pago - subtotal); valor pago zero assume pagamento
// exato. A venda é registrada apenas no log: o estoque não é decrementado.
func (uc *PDVUseCase) Finalizar(in dto.FinalizarVendaRequest) (*dto.FinalizarVendaResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}

	var subtotal decimal.Decimal
	itemCount := 0
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		itemCount += item.Quantity
	}
	subtotal = subtotal.Round(2)

	paid := in.PaymentValue
	if paid.IsZero() {
		paid = subtotal
	}
	troco := paid.Sub(subtotal)
	if troco.IsNegative() {
		troco = decimal.Zero
	}

	var clientName string
	if in.ClientID != 0 {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("pdv: buscar cliente: %w", err)
		}
		if client != nil {
			clientName = client.Name
		}
	}

	uc.log.Info().
		Int64("clientId", in.ClientID).
		Str("cliente", clientName).
		Str("pagamento", in.PaymentMethod).
		Int("itens", itemCount).
		Str("subtotal", subtotal.String()).
		Str("troco", troco.String()).
		Interface("items", in.Items).
		Msg("venda finalizada (simulado)")

	return &dto.FinalizarVendaResponse{
		Subtotal:      subtotal,
		SubtotalLabel: format.Money(subtotal),
		ItemCount:     itemCount,
		PaymentMethod: in.PaymentMethod,
		PaymentValue:  paid,
		Troco:         troco,
		Message:       "Venda finalizada com sucesso!",
	}, nil
}
