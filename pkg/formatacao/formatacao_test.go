package formatacao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/equipamax/margem-api/pkg/formatacao"
)

func TestFormatarBRL(t *testing.T) {
	casos := []struct {
		nome     string
		valor    string
		esperado string
	}{
		{"valor com milhar e centavos", "1234567.89", "R$ 1.234.567,89"},
		{"valor redondo", "500000", "R$ 500.000,00"},
		{"zero", "0", "R$ 0,00"},
		{"centavos", "0.5", "R$ 0,50"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			v, err := decimal.NewFromString(c.valor)
			assert.NoError(t, err)
			assert.Equal(t, c.esperado, formatacao.FormatarBRL(v))
		})
	}
}

func TestFormatarPercentual(t *testing.T) {
	v, _ := decimal.NewFromString("0.1234")
	assert.Equal(t, "12,34%", formatacao.FormatarPercentual(v))

	zero := decimal.Zero
	assert.Equal(t, "0,00%", formatacao.FormatarPercentual(zero))
}
