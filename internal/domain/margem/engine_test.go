package margem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipamax/margem-api/internal/domain/margem"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs dos resolvers
// ──────────────────────────────────────────────────────────────────────────────

// stubParametros resolve parâmetros a partir de um mapa código -> valor.
// Códigos ausentes devolvem nil (o motor aplica o default documentado).
type stubParametros struct {
	valores map[string]string
}

func (s *stubParametros) ObterParametroDecimal(codigo string, _ time.Time, _, _, _ *int) (*decimal.Decimal, error) {
	if s.valores == nil {
		return nil, nil
	}
	v, ok := s.valores[codigo]
	if !ok {
		return nil, nil
	}
	d := decimal.RequireFromString(v)
	return &d, nil
}

// stubConfigDN devolve sempre a mesma configuração (ou nil) e grava a última
// consulta recebida, para inspecionar a chave ano/mês usada pelo motor.
type stubConfigDN struct {
	config         *margem.ConfigDN
	err            error
	ultimaConsulta margem.ConsultaDN
}

func (s *stubConfigDN) ObterConfigDN(consulta margem.ConsultaDN) (*margem.ConfigDN, error) {
	s.ultimaConsulta = consulta
	return s.config, s.err
}

func dn(valor string) *stubConfigDN {
	return &stubConfigDN{config: &margem.ConfigDN{
		IDDN:    1,
		ValorDN: decimal.RequireFromString(valor),
		Ano:     2025,
	}}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// entradaPlanilha reproduz o cenário de referência da planilha: 1 máquina a
// R$ 500.000,00, DN de R$ 400.000,00, entrada de 10%, 5 parcelas de 30 em 30
// dias a partir de 30 dias.
func entradaPlanilha() margem.EntradaCalculo {
	return margem.EntradaCalculo{
		IDProduto:   10,
		IDFilial:    1,
		IDTipoVenda: 2,

		Quantidade:         1,
		ValorVendaUnitario: dec("500000.00"),

		DataReserva: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),

		PercEntrada:              dec("0.10"),
		QtdParcelas:              5,
		PrazoPrimeiraParcelaDias: 30,
		IntervaloParcelasDias:    30,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de referência da planilha
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcular_CenarioPlanilha(t *testing.T) {
	params := &stubParametros{valores: map[string]string{
		margem.ParamICMSVenda:           "0.03",
		margem.ParamPisCofinsVenda:      "0.00",
		margem.ParamICMSPisCofinsCompra: "0.03",
		margem.ParamPisCofinsCompra:     "0.00",
		margem.ParamPDIGarantia:         "0.02",
		margem.ParamTaxaJurosMensal:     "0.0172",
		margem.ParamComissaoBruta:       "0.006",
		margem.ParamComissaoDSR:         "0.20",
		margem.ParamComissaoEncargos:    "0.3595",
	}}
	calc := margem.NewCalculadora(params, dn("400000.00"), nil)

	resultado, err := calc.Calcular(entradaPlanilha())
	require.NoError(t, err)

	// Venda e impostos (E14 / E16)
	assert.True(t, dec("500000.00").Equal(resultado.ValorVendaTotal), "valor de venda = quantidade * unitário")
	assert.True(t, dec("15000.00").Equal(resultado.ImpostosVendaTotal), "impostos venda = 3% de 500.000")

	// Lado compra (E22 / E24 / E20)
	assert.True(t, dec("400000.00").Equal(resultado.ValorDN))
	assert.True(t, dec("12000.00").Equal(resultado.ImpostosCompraTotal), "impostos compra = 3% do DN")
	assert.True(t, dec("388000.00").Equal(resultado.CMVTotal), "CMV = DN - impostos compra, sem adicionais")

	// PDI 2% e lucro bruto (E45 / E46)
	assert.True(t, dec("10000.00").Equal(resultado.ValorPDIGarantia))
	assert.True(t, dec("87000.00").Equal(resultado.LucroBrutoValor))
	assert.True(t, dec("0.174").Equal(resultado.MargemBrutaPercent),
		"margem bruta = 87.000 / 500.000")

	// Comissão (E54-E57)
	assert.True(t, dec("3000.00").Equal(resultado.ComissaoBruta))
	assert.True(t, dec("600.00").Equal(resultado.ComissaoDSR))
	assert.True(t, dec("1294.20").Equal(resultado.ComissaoEncargos), "encargos = 35,95% de 3.600")
	assert.True(t, dec("4894.20").Equal(resultado.ComissaoTotal))

	// Fluxo: entrada aos 30 dias + 5 parcelas de 60 a 180 dias
	require.Len(t, resultado.FluxoParcelas, 6)

	entrada := resultado.FluxoParcelas[0]
	assert.Equal(t, margem.TipoParcelaEntrada, entrada.TipoParcela)
	assert.Equal(t, 0, entrada.NumeroParcela)
	assert.Equal(t, 30, entrada.PrazoDias)
	assert.True(t, dec("50000.00").Equal(entrada.ValorNominal), "entrada = 10% da base")
	assert.True(t, dec("0.0172").Equal(entrada.TaxaEfetiva), "30 dias = exatamente um período mensal")
	assert.True(t, dec("49154.54").Equal(entrada.ValorPresente))
	assert.True(t, dec("845.46").Equal(entrada.CustoFinanceiro))

	prazosEsperados := []int{30, 60, 90, 120, 150, 180}
	for i, parcela := range resultado.FluxoParcelas {
		assert.Equal(t, prazosEsperados[i], parcela.PrazoDias, "prazo da linha %d", i)
	}
	for i := 1; i <= 5; i++ {
		parcela := resultado.FluxoParcelas[i]
		assert.Equal(t, margem.TipoParcelaParcela, parcela.TipoParcela)
		assert.Equal(t, i, parcela.NumeroParcela)
		assert.True(t, dec("90000.00").Equal(parcela.ValorNominal), "parcela %d = 450.000 / 5", i)
	}

	// Segunda linha: (1+0,0172)^2 - 1 = 0,03469584 -> 0,034696
	assert.True(t, dec("0.034696").Equal(resultado.FluxoParcelas[1].TaxaEfetiva))
	// Terceira: (1+0,0172)^3 - 1 -> 0,052493
	assert.True(t, dec("0.052493").Equal(resultado.FluxoParcelas[2].TaxaEfetiva))

	// Custo financeiro total = soma das linhas
	soma := decimal.Zero
	for _, parcela := range resultado.FluxoParcelas {
		soma = soma.Add(parcela.CustoFinanceiro)
	}
	assert.True(t, soma.Round(2).Equal(resultado.CustoFinanceiroTotal))

	// Margem de contribuição fecha a cadeia: lucro bruto - custo financeiro - comissão
	esperado := resultado.LucroBrutoValor.
		Sub(resultado.CustoFinanceiroTotal).
		Sub(resultado.ComissaoTotal).
		Round(2)
	assert.True(t, esperado.Equal(resultado.MargemContribValor))
	assert.True(t, resultado.MargemContribValor.Div(resultado.ValorVendaTotal).Round(6).
		Equal(resultado.MargemContribPercent))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propriedades do fluxo
// ──────────────────────────────────────────────────────────────────────────────

// TestCalcular_FluxoReconstituiBase: entrada + parcelas devem somar a base
// financiada dentro da tolerância de arredondamento de 2 casas por parcela.
func TestCalcular_FluxoReconstituiBase(t *testing.T) {
	casos := []struct {
		nome        string
		percEntrada string
		qtdParcelas int
	}{
		{"sem entrada, divisão exata", "0", 5},
		{"com entrada, divisão exata", "0.10", 5},
		{"divisão com dízima", "0.10", 7},
		{"somente entrada", "1", 0},
		{"parcela única", "0", 1},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			entrada := entradaPlanilha()
			entrada.PercEntrada = dec(c.percEntrada)
			entrada.QtdParcelas = c.qtdParcelas

			calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)
			resultado, err := calc.Calcular(entrada)
			require.NoError(t, err)

			soma := decimal.Zero
			for _, parcela := range resultado.FluxoParcelas {
				soma = soma.Add(parcela.ValorNominal)
			}
			diff := soma.Sub(resultado.ValorVendaTotal).Abs()
			tolerancia := dec("0.01").Mul(decimal.NewFromInt(int64(c.qtdParcelas + 1)))
			assert.True(t, diff.LessThanOrEqual(tolerancia),
				"soma %s deve reconstituir a base %s (diferença %s)",
				soma, resultado.ValorVendaTotal, diff)
		})
	}
}

// TestCalcular_SemFinanciamento: sem entrada e sem parcelas o fluxo é vazio e
// o custo financeiro é zero.
func TestCalcular_SemFinanciamento(t *testing.T) {
	entrada := entradaPlanilha()
	entrada.PercEntrada = decimal.Zero
	entrada.QtdParcelas = 0

	calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)
	resultado, err := calc.Calcular(entrada)
	require.NoError(t, err)

	assert.Empty(t, resultado.FluxoParcelas)
	assert.True(t, resultado.CustoFinanceiroTotal.IsZero())
}

// TestCalcular_CustoFinanceiroCresceComJuros: aumentar a taxa mensal aumenta
// estritamente o custo financeiro de cada linha do fluxo.
func TestCalcular_CustoFinanceiroCresceComJuros(t *testing.T) {
	calcular := func(taxa string) *margem.ResultadoCalculo {
		params := &stubParametros{valores: map[string]string{
			margem.ParamTaxaJurosMensal: taxa,
		}}
		calc := margem.NewCalculadora(params, dn("400000.00"), nil)
		resultado, err := calc.Calcular(entradaPlanilha())
		require.NoError(t, err)
		return resultado
	}

	menor := calcular("0.0172")
	maior := calcular("0.0250")

	require.Equal(t, len(menor.FluxoParcelas), len(maior.FluxoParcelas))
	for i := range menor.FluxoParcelas {
		assert.True(t, maior.FluxoParcelas[i].CustoFinanceiro.GreaterThan(menor.FluxoParcelas[i].CustoFinanceiro),
			"linha %d: custo com juros maiores deve ser estritamente maior", i)
	}
	assert.True(t, maior.CustoFinanceiroTotal.GreaterThan(menor.CustoFinanceiroTotal))
}

// ──────────────────────────────────────────────────────────────────────────────
// Regras de negócio e defaults
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcular_SemConfigDN(t *testing.T) {
	calc := margem.NewCalculadora(&stubParametros{}, &stubConfigDN{config: nil}, nil)

	_, err := calc.Calcular(entradaPlanilha())
	require.Error(t, err)

	var erroRegra *margem.ErroRegraNegocio
	require.ErrorAs(t, err, &erroRegra, "DN ausente é erro de negócio, nunca default silencioso")
	assert.Contains(t, erroRegra.Mensagem, "configuração de DN")
}

func TestCalcular_ValorVendaNaoPositivo(t *testing.T) {
	entrada := entradaPlanilha()
	entrada.Quantidade = 0

	calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)
	_, err := calc.Calcular(entrada)

	var erroRegra *margem.ErroRegraNegocio
	require.ErrorAs(t, err, &erroRegra)
	assert.Contains(t, erroRegra.Mensagem, "maior que zero")
}

func TestCalcular_PercEntradaForaDoIntervalo(t *testing.T) {
	for _, perc := range []string{"1.5", "-0.1", "1.000001"} {
		t.Run(perc, func(t *testing.T) {
			entrada := entradaPlanilha()
			entrada.PercEntrada = dec(perc)

			calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)
			_, err := calc.Calcular(entrada)

			var erroRegra *margem.ErroRegraNegocio
			require.ErrorAs(t, err, &erroRegra)
			assert.Contains(t, erroRegra.Mensagem, "entre 0 e 1")
		})
	}
}

// TestCalcular_DefaultsDocumentados: sem nenhum parâmetro cadastrado o motor
// aplica os defaults e conclui o cálculo normalmente.
func TestCalcular_DefaultsDocumentados(t *testing.T) {
	calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)

	resultado, err := calc.Calcular(entradaPlanilha())
	require.NoError(t, err)

	assert.True(t, dec("15000.00").Equal(resultado.ImpostosVendaTotal), "ICMS_VENDA default 3%")
	assert.True(t, dec("12000.00").Equal(resultado.ImpostosCompraTotal), "ICMS_PIS_COFINS_COMPRA default 3%")
	assert.True(t, dec("10000.00").Equal(resultado.ValorPDIGarantia), "PDI_GARANTIA_PERC default 2%")
	assert.True(t, dec("0.0172").Equal(resultado.FluxoParcelas[0].TaxaEfetiva), "TAXA_JUROS_MENSAL default 1,72%")
	assert.True(t, dec("3000.00").Equal(resultado.ComissaoBruta), "COMISSAO_BRUTA_PERC default 0,6%")
	assert.True(t, resultado.ValorCartaFianca.IsZero(), "CARTA_FIANCA_PERC default 0")
}

// TestCalcular_OverridesDePercentual: overrides não zerados de PDI e carta
// fiança substituem os parâmetros; zero cai no parâmetro.
func TestCalcular_OverridesDePercentual(t *testing.T) {
	entrada := entradaPlanilha()
	entrada.PercPDIGarantia = dec("0.05")
	entrada.PercCartaFianca = dec("0.01")

	calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)
	resultado, err := calc.Calcular(entrada)
	require.NoError(t, err)

	assert.True(t, dec("25000.00").Equal(resultado.ValorPDIGarantia), "override 5% sobre 500.000")
	assert.True(t, dec("5000.00").Equal(resultado.ValorCartaFianca), "override 1% sobre 500.000")
}

// ──────────────────────────────────────────────────────────────────────────────
// Chave de DN e determinismo
// ──────────────────────────────────────────────────────────────────────────────

// TestCalcular_ChaveDN: ano/mês saem da previsão de entrega quando informada;
// sem previsão, da data da reserva.
func TestCalcular_ChaveDN(t *testing.T) {
	configDN := dn("400000.00")
	calc := margem.NewCalculadora(&stubParametros{}, configDN, nil)

	entrada := entradaPlanilha()
	_, err := calc.Calcular(entrada)
	require.NoError(t, err)
	assert.Equal(t, 2025, configDN.ultimaConsulta.Ano)
	assert.Equal(t, 3, configDN.ultimaConsulta.Mes)

	previsao := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	entrada.PrevisaoEntrega = &previsao
	_, err = calc.Calcular(entrada)
	require.NoError(t, err)
	assert.Equal(t, 2026, configDN.ultimaConsulta.Ano)
	assert.Equal(t, 1, configDN.ultimaConsulta.Mes)

	assert.Equal(t, entrada.IDProduto, configDN.ultimaConsulta.IDProduto)
	assert.Equal(t, entrada.IDFilial, configDN.ultimaConsulta.IDFilial)
	assert.Equal(t, entrada.IDTipoVenda, configDN.ultimaConsulta.IDTipoVenda)
	assert.False(t, configDN.ultimaConsulta.PossuiAF)
}

// TestCalcular_FalhaDoResolverPropaga: erro do resolver de DN não é erro de
// negócio e propaga sem tratamento.
func TestCalcular_FalhaDoResolverPropaga(t *testing.T) {
	falha := errors.New("timeout de banco")
	calc := margem.NewCalculadora(&stubParametros{}, &stubConfigDN{err: falha}, nil)

	_, err := calc.Calcular(entradaPlanilha())
	require.ErrorIs(t, err, falha)

	var erroRegra *margem.ErroRegraNegocio
	assert.False(t, errors.As(err, &erroRegra))
}

// TestCalcular_Deterministico: a mesma entrada com os mesmos resolvers produz
// resultados idênticos bit a bit.
func TestCalcular_Deterministico(t *testing.T) {
	calc := margem.NewCalculadora(&stubParametros{}, dn("400000.00"), nil)

	r1, err1 := calc.Calcular(entradaPlanilha())
	r2, err2 := calc.Calcular(entradaPlanilha())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2, "o cálculo deve ser determinístico")
}
