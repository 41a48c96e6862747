package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/application/usecase"
	"github.com/equipamax/margem-api/internal/domain/margem"
	apphttp "github.com/equipamax/margem-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs dos resolvers do motor
// ──────────────────────────────────────────────────────────────────────────────

// semParametros devolve nil para tudo: o motor usa os defaults documentados.
type semParametros struct{}

func (semParametros) ObterParametroDecimal(string, time.Time, *int, *int, *int) (*decimal.Decimal, error) {
	return nil, nil
}

// dnFixo devolve sempre a mesma configuração de DN, ou nada quando vazio.
type dnFixo struct {
	valor string
}

func (s dnFixo) ObterConfigDN(margem.ConsultaDN) (*margem.ConfigDN, error) {
	if s.valor == "" {
		return nil, nil
	}
	return &margem.ConfigDN{IDDN: 1, ValorDN: decimal.RequireFromString(s.valor), Ano: 2025}, nil
}

func buildMargemApp(dn dnFixo) *fiber.App {
	calc := margem.NewCalculadora(semParametros{}, dn, nil)
	handler := apphttp.NewMargemHandler(usecase.NewMargemUseCase(calc))

	app := fiber.New()
	app.Post("/api/margem/calcular", handler.Calcular)
	return app
}

func postCalcular(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/margem/calcular", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const corpoPlanilha = `{
	"id_produto": 1,
	"id_filial": 1,
	"id_tipo_venda": 1,
	"quantidade": 1,
	"valor_venda_unitario": 500000,
	"data_reserva": "2025-03-14",
	"perc_entrada": 0.10,
	"qtd_parcelas": 5,
	"prazo_primeira_parcela_dias": 30,
	"intervalo_parcelas_dias": 30
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Cenário completo: venda financiada de R$ 500.000 com DN de R$ 400.000.
func TestMargemHandler_Calcular_OK(t *testing.T) {
	app := buildMargemApp(dnFixo{valor: "400000"})
	resp := postCalcular(t, app, corpoPlanilha)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CalcularMargemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.True(t, decimal.RequireFromString("500000").Equal(out.ValorVendaTotal),
		"valor de venda total deve ser 500.000")
	assert.True(t, decimal.RequireFromString("388000").Equal(out.CMVTotal),
		"CMV = DN - impostos de compra")
	assert.True(t, decimal.RequireFromString("87000").Equal(out.LucroBrutoValor))
	assert.True(t, decimal.RequireFromString("0.174").Equal(out.MargemBrutaPercent))
	assert.True(t, decimal.RequireFromString("4894.20").Equal(out.ComissaoTotal))

	require.Len(t, out.FluxoParcelas, 6, "entrada + 5 parcelas")
	assert.Equal(t, 1, out.FluxoParcelas[0].TipoParcela)
	assert.Equal(t, 0, out.FluxoParcelas[0].NumeroParcela)

	assert.Contains(t, out.ValorVendaTotalFormatado, "R$",
		"os campos formatados devem vir em padrão monetário brasileiro")
}

// Sem configuração de DN cadastrada o cálculo é uma violação de regra de
// negócio, não um erro interno.
func TestMargemHandler_Calcular_SemDN_Retorna422(t *testing.T) {
	app := buildMargemApp(dnFixo{})
	resp := postCalcular(t, app, corpoPlanilha)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "REGRA_NEGOCIO", out.Code)
	assert.Contains(t, out.Message, "configuração de DN")
}

// Quantidade zero é barrada na validação de entrada, antes do motor.
func TestMargemHandler_Calcular_EntradaInvalida_Retorna400(t *testing.T) {
	app := buildMargemApp(dnFixo{valor: "400000"})
	body := strings.Replace(corpoPlanilha, `"quantidade": 1`, `"quantidade": 0`, 1)
	resp := postCalcular(t, app, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

// Percentual de entrada acima de 1 também é barrado na validação.
func TestMargemHandler_Calcular_PercEntradaForaDoIntervalo_Retorna400(t *testing.T) {
	app := buildMargemApp(dnFixo{valor: "400000"})
	body := strings.Replace(corpoPlanilha, `"perc_entrada": 0.10`, `"perc_entrada": 1.5`, 1)
	resp := postCalcular(t, app, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMargemHandler_Calcular_BodyInvalido_Retorna400(t *testing.T) {
	app := buildMargemApp(dnFixo{valor: "400000"})
	resp := postCalcular(t, app, `{invalido`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_BODY", out.Code)
}
