package entity

import "time"

// TipoVenda modalidade comercial da negociação (venda direta, financiada,
// órgão público). FlagFinanciado indica se o fluxo de parcelas se aplica.
type TipoVenda struct {
	ID                int
	Nome              string
	CodigoInterno     string
	FlagFinanciado    bool
	FlagOrgaoPublico  bool
	Ativo             bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
