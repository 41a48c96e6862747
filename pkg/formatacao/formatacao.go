// Package formatacao formata valores monetários e percentuais no padrão
// brasileiro, para os campos *_formatado das respostas da API.
package formatacao

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var cem = decimal.NewFromInt(100)

// FormatarBRL formata um valor monetário: R$ 1.234.567,89.
func FormatarBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatarPercentual formata uma fração (0,1234) como percentual: 12,34%.
func FormatarPercentual(v decimal.Decimal) string {
	f, _ := v.Mul(cem).Float64()
	return printer.Sprintf("%v%%",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
