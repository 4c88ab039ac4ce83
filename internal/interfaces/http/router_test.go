package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortidev/quitanda-api/internal/application/auth"
	"github.com/hortidev/quitanda-api/internal/application/dto"
	"github.com/hortidev/quitanda-api/internal/application/usecase"
	"github.com/hortidev/quitanda-api/internal/infrastructure/memory"
	"github.com/hortidev/quitanda-api/internal/infrastructure/pdf"
	apihttp "github.com/hortidev/quitanda-api/internal/interfaces/http"
	"github.com/hortidev/quitanda-api/pkg/logger"
)

const testSecret = "segredo-de-teste"

// newTestApp monta a aplicação completa sobre o catálogo e o histórico
// gerado, igual ao bootstrap do main.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	catalog := memory.NewCatalog()
	txs := memory.GenerateTransactions(42, time.Now(), 90)

	txRepo := memory.NewTransactionRepository(txs)
	productRepo := memory.NewProductRepository(catalog)
	clientRepo := memory.NewClientRepository(catalog)
	supplierRepo := memory.NewSupplierRepository(catalog)

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "quitanda-api"}, log),
		DashboardUC:  usecase.NewDashboardUseCase(txRepo),
		StockUC:      usecase.NewStockUseCase(txRepo, productRepo, supplierRepo),
		CadastroUC:   usecase.NewCadastroUseCase(log),
		PDVUC:        usecase.NewPDVUseCase(clientRepo, log),
		ReportUC:     usecase.NewReportUseCase(txRepo, pdf.NewMarotoReportGenerator()),
		ClientRepo:   clientRepo,
		SupplierRepo: supplierRepo,
		JWTSecret:    testSecret,
	})
	return app
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	req := httptest.NewRequest(nethttp.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"name":"Maria","password":"qualquer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func authedReq(method, target, token string, body io.Reader) *nethttp.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AceitaQualquerCredencial(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"name":"","password":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Operador", out.Operator)
}

func TestRotasProtegidas_SemToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/dashboard/resumo", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "MISSING_TOKEN", out.Code)
}

func TestRotasProtegidas_TokenInvalido(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/dashboard/resumo", "nao-e-um-jwt", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_TOKEN", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardResumo_ComToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/dashboard/resumo?inicio=2020-01-01&fim=2030-12-31", token, nil))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.DashboardResumoDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	// O intervalo cobre todo o histórico gerado: 91 dias com 2 a 5
	// movimentações cada.
	assert.Equal(t, "2020-01-01", out.Inicio)
	assert.GreaterOrEqual(t, out.NumMovimentos, 91*2)
	assert.LessOrEqual(t, out.NumMovimentos, 91*5)
	assert.Len(t, out.Movimentos, out.NumMovimentos)
	assert.True(t, out.Saldo.Equal(out.Entradas.Sub(out.Saidas).Sub(out.Perdas)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestEstoque_ListaCatalogo(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/estoque/", token, nil))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out []dto.ProductDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 10)
	assert.NotEmpty(t, out[0].SupplierName, "nome do fornecedor resolvido na listagem")
}

func TestEstoque_FichaDeProdutoInexistente(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/estoque/999", token, nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestEstoque_IdNaoNumerico(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/estoque/abc", token, nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastros e movimentações (simulados)
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastroProduto_PayloadInvalido(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodPost, "/api/cadastros/produtos", token,
		bytes.NewBufferString(`{"stock":5}`)))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_INPUT", out.Code)
}

func TestMovimentacoes_RegistroSimulado(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodPost, "/api/movimentacoes", token,
		bytes.NewBufferString(`{"type":"venda","productId":1,"quantity":5,"totalPrice":"115"}`)))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.SaveResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "Venda registrada com sucesso", out.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDV
// ──────────────────────────────────────────────────────────────────────────────

func TestPDVFinalizar_CarrinhoVazio(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodPost, "/api/pdv/finalizar", token,
		bytes.NewBufferString(`{"items":[],"paymentMethod":"pix"}`)))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "EMPTY_CART", out.Code)
}

func TestPDVFinalizar_Sucesso(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	body := `{"clientId":1,"items":[{"productId":1,"name":"Mamão Papaya (Cx)","price":"23","quantity":2}],"paymentMethod":"dinheiro","paymentValue":"50"}`
	resp, err := app.Test(authedReq(nethttp.MethodPost, "/api/pdv/finalizar", token,
		bytes.NewBufferString(body)))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.FinalizarVendaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.ItemCount)
	assert.True(t, out.Subtotal.StringFixed(2) == "46.00")
	assert.True(t, out.Troco.StringFixed(2) == "4.00")
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatórios
// ──────────────────────────────────────────────────────────────────────────────

func TestRelatorioPeriodo_DevolvePDF(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedReq(nethttp.MethodGet, "/api/relatorios/periodo.pdf", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "corpo começa com a assinatura PDF")
}
