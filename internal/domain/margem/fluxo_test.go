package margem

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taxaPadrao = decimal.RequireFromString("0.0172")

func TestMontarFluxoPagamento_BaseNaoPositiva(t *testing.T) {
	fluxo, err := montarFluxoPagamento(decimal.Zero, decimal.Zero, 5, 30, 30, taxaPadrao)
	require.NoError(t, err)
	assert.Empty(t, fluxo)

	negativa := decimal.RequireFromString("-100")
	fluxo, err = montarFluxoPagamento(negativa, decimal.Zero, 5, 30, 30, taxaPadrao)
	require.NoError(t, err)
	assert.Empty(t, fluxo)
}

func TestMontarFluxoPagamento_QtdParcelasNegativa(t *testing.T) {
	base := decimal.RequireFromString("100000")
	fluxo, err := montarFluxoPagamento(base, decimal.Zero, -1, 30, 30, taxaPadrao)
	require.NoError(t, err)
	assert.Empty(t, fluxo)
}

// A entrada é sempre a primeira linha e as parcelas seguem em ordem 1..N.
func TestMontarFluxoPagamento_Ordenacao(t *testing.T) {
	base := decimal.RequireFromString("100000")
	entrada := decimal.RequireFromString("20000")

	fluxo, err := montarFluxoPagamento(base, entrada, 3, 15, 45, taxaPadrao)
	require.NoError(t, err)
	require.Len(t, fluxo, 4)

	assert.Equal(t, TipoParcelaEntrada, fluxo[0].TipoParcela)
	assert.Equal(t, 0, fluxo[0].NumeroParcela)
	assert.Equal(t, 15, fluxo[0].PrazoDias)

	// prazo = primeira + intervalo * i
	prazos := []int{60, 105, 150}
	for i := 1; i < len(fluxo); i++ {
		assert.Equal(t, TipoParcelaParcela, fluxo[i].TipoParcela)
		assert.Equal(t, i, fluxo[i].NumeroParcela)
		assert.Equal(t, prazos[i-1], fluxo[i].PrazoDias)
	}
}

// Divisão com dízima: 80.000 / 3 = 26.666,67 por parcela (half-up).
func TestMontarFluxoPagamento_DivisaoComDizima(t *testing.T) {
	base := decimal.RequireFromString("100000")
	entrada := decimal.RequireFromString("20000")

	fluxo, err := montarFluxoPagamento(base, entrada, 3, 30, 30, taxaPadrao)
	require.NoError(t, err)
	require.Len(t, fluxo, 4)

	esperado := decimal.RequireFromString("26666.67")
	for i := 1; i < len(fluxo); i++ {
		assert.True(t, esperado.Equal(fluxo[i].ValorNominal))
	}
}

func TestMontarFluxoPagamento_PercentualBase(t *testing.T) {
	base := decimal.RequireFromString("100000")
	entrada := decimal.RequireFromString("25000")

	fluxo, err := montarFluxoPagamento(base, entrada, 3, 30, 30, taxaPadrao)
	require.NoError(t, err)
	require.Len(t, fluxo, 4)

	assert.True(t, decimal.RequireFromString("0.25").Equal(fluxo[0].PercentualBase))
	assert.True(t, decimal.RequireFromString("0.25").Equal(fluxo[1].PercentualBase),
		"25.000 / 100.000 por parcela")
}

// Prazo zero: fator (1+i)^0 = 1, taxa efetiva zero, custo financeiro zero.
func TestCriarParcela_PrazoZero(t *testing.T) {
	nominal := decimal.RequireFromString("50000")
	base := decimal.RequireFromString("100000")

	parcela, err := criarParcela(TipoParcelaEntrada, 0, 0, nominal, base, taxaPadrao)
	require.NoError(t, err)

	assert.True(t, parcela.TaxaEfetiva.IsZero())
	assert.True(t, nominal.Round(2).Equal(parcela.ValorPresente))
	assert.True(t, parcela.CustoFinanceiro.IsZero())
}

// Prazo de 30 dias: taxa efetiva igual à taxa mensal.
func TestCriarParcela_PrazoDeUmPeriodo(t *testing.T) {
	nominal := decimal.RequireFromString("50000")
	base := decimal.RequireFromString("100000")

	parcela, err := criarParcela(TipoParcelaParcela, 1, 30, nominal, base, taxaPadrao)
	require.NoError(t, err)

	assert.True(t, taxaPadrao.Equal(parcela.TaxaEfetiva))
	assert.True(t, decimal.RequireFromString("49154.54").Equal(parcela.ValorPresente))
	assert.True(t, decimal.RequireFromString("845.46").Equal(parcela.CustoFinanceiro))
}
