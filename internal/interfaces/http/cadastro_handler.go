package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/domain/repository"
)

// CadastroHandler trata as listagens de cadastro e os saves simulados.
type CadastroHandler struct {
	uc           *usecase.CadastroUseCase
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
}

// NewCadastroHandler constrói o handler.
func NewCadastroHandler(
	uc *usecase.CadastroUseCase,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
) *CadastroHandler {
	return &CadastroHandler{uc: uc, clientRepo: clientRepo, supplierRepo: supplierRepo}
}

// ListClients lista os clientes. GET /api/cadastros/clientes
func (h *CadastroHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clientRepo.List()
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.ClientDTO{
			ID: cl.ID, Name: cl.Name, Contact: cl.Contact,
			Doc: cl.Doc, DocType: cl.DocType, Email: cl.Email,
		})
	}
	return c.JSON(out)
}

// ListSuppliers lista os fornecedores. GET /api/cadastros/fornecedores
func (h *CadastroHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierRepo.List()
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierDTO{
			ID: s.ID, Name: s.Name, Contact: s.Contact,
			Doc: s.Doc, DocType: s.DocType, Email: s.Email,
		})
	}
	return c.JSON(out)
}

// SaveProduct salva (simulado) um produto. POST /api/cadastros/produtos
func (h *CadastroHandler) SaveProduct(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body inválido")
	}
	out, err := h.uc.SaveProduct(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SaveClient salva (simulado) um cliente. POST /api/cadastros/clientes
func (h *CadastroHandler) SaveClient(c *fiber.Ctx) error {
	var in dto.SaveEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body inválido")
	}
	out, err := h.uc.SaveClient(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SaveSupplier salva (simulado) um fornecedor. POST /api/cadastros/fornecedores
func (h *CadastroHandler) SaveSupplier(c *fiber.Ctx) error {
	var in dto.SaveEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body inválido")
	}
	out, err := h.uc.SaveSupplier(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// RegisterTransaction registra (simulado) uma venda/compra/perda rápida.
// POST /api/movimentacoes
func (h *CadastroHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body inválido")
	}
	out, err := h.uc.RegisterTransaction(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
