package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfigDN custo base negociado (Desconto Negociado) de um produto para a
// combinação filial / tipo de venda / modalidade / AF em um ano e mês de
// referência. Mes nulo cobre o ano inteiro.
type ConfigDN struct {
	ID              int64
	IDProduto       int64
	IDFilial        int
	IDTipoVenda     int
	IDModalidadeFin *int
	PossuiAF        bool
	Ano             int
	Mes             *int
	DataReferencia  *time.Time
	ValorDN         decimal.Decimal
	OrigemDado      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
