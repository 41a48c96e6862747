package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/domain"
)

func entradaValida() dto.CalcularMargemRequest {
	return dto.CalcularMargemRequest{
		IDProduto:          1,
		IDFilial:           2,
		IDTipoVenda:        3,
		Quantidade:         1,
		ValorVendaUnitario: decimal.NewFromInt(500000),
		DataReserva:        "2025-03-14",

		PercEntrada:              decimal.NewFromFloat(0.10),
		QtdParcelas:              5,
		PrazoPrimeiraParcelaDias: 30,
		IntervaloParcelasDias:    30,
	}
}

func TestMontarEntrada_Valida(t *testing.T) {
	entrada, err := montarEntrada(entradaValida())
	require.NoError(t, err)

	assert.Equal(t, int64(1), entrada.IDProduto)
	assert.Equal(t, 2, entrada.IDFilial)
	assert.Equal(t, 3, entrada.IDTipoVenda)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), entrada.DataReserva)
	assert.Nil(t, entrada.PrevisaoEntrega)
}

func TestMontarEntrada_PrevisaoEntrega(t *testing.T) {
	in := entradaValida()
	in.PrevisaoEntrega = "2025-06-01"

	entrada, err := montarEntrada(in)
	require.NoError(t, err)
	require.NotNil(t, entrada.PrevisaoEntrega)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *entrada.PrevisaoEntrega)
}

func TestMontarEntrada_Invalida(t *testing.T) {
	casos := []struct {
		nome    string
		mutacao func(*dto.CalcularMargemRequest)
	}{
		{"produto zero", func(in *dto.CalcularMargemRequest) { in.IDProduto = 0 }},
		{"filial negativa", func(in *dto.CalcularMargemRequest) { in.IDFilial = -1 }},
		{"tipo de venda zero", func(in *dto.CalcularMargemRequest) { in.IDTipoVenda = 0 }},
		{"quantidade zero", func(in *dto.CalcularMargemRequest) { in.Quantidade = 0 }},
		{"valor de venda negativo", func(in *dto.CalcularMargemRequest) {
			in.ValorVendaUnitario = decimal.NewFromInt(-1)
		}},
		{"parcelas acima do limite", func(in *dto.CalcularMargemRequest) { in.QtdParcelas = maxQtdParcelas + 1 }},
		{"parcelas negativas", func(in *dto.CalcularMargemRequest) { in.QtdParcelas = -1 }},
		{"prazo acima do limite", func(in *dto.CalcularMargemRequest) { in.PrazoPrimeiraParcelaDias = maxPrazoDias + 1 }},
		{"intervalo negativo", func(in *dto.CalcularMargemRequest) { in.IntervaloParcelasDias = -1 }},
		{"entrada acima de 100%", func(in *dto.CalcularMargemRequest) {
			in.PercEntrada = decimal.NewFromFloat(1.5)
		}},
		{"entrada negativa", func(in *dto.CalcularMargemRequest) {
			in.PercEntrada = decimal.NewFromFloat(-0.1)
		}},
		{"pdi acima de 100%", func(in *dto.CalcularMargemRequest) {
			in.PercPDIGarantia = decimal.NewFromInt(2)
		}},
		{"carta fiança negativa", func(in *dto.CalcularMargemRequest) {
			in.PercCartaFianca = decimal.NewFromFloat(-0.01)
		}},
		{"frete de compra negativo", func(in *dto.CalcularMargemRequest) {
			in.FreteCompra = decimal.NewFromInt(-100)
		}},
		{"cortesia negativa", func(in *dto.CalcularMargemRequest) {
			in.ValorCortesia = decimal.NewFromInt(-50)
		}},
		{"data da reserva malformada", func(in *dto.CalcularMargemRequest) { in.DataReserva = "14/03/2025" }},
		{"previsão de entrega malformada", func(in *dto.CalcularMargemRequest) { in.PrevisaoEntrega = "junho" }},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			in := entradaValida()
			c.mutacao(&in)

			_, err := montarEntrada(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMontarEntrada_DataReservaVazia(t *testing.T) {
	in := entradaValida()
	in.DataReserva = ""

	entrada, err := montarEntrada(in)
	require.NoError(t, err)
	assert.True(t, entrada.DataReserva.IsZero())
}
