package margem

import "github.com/shopspring/decimal"

var um = decimal.NewFromInt(1)

// q2 arredonda para 2 casas decimais, half-up (valores monetários).
func q2(v decimal.Decimal) decimal.Decimal { return v.Round(2) }

// q6 arredonda para 6 casas decimais, half-up (percentuais e taxas).
func q6(v decimal.Decimal) decimal.Decimal { return v.Round(6) }
