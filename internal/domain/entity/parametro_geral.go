package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParametroGeral parâmetro de negócio versionado por vigência. As dimensões
// IDFilial, IDTipoVenda e IDModalidadeFin são opcionais; quanto mais
// dimensões preenchidas, mais específico o parâmetro, e o mais específico
// vence na resolução.
type ParametroGeral struct {
	ID              int
	Codigo          string
	Descricao       string
	ValorDecimal    *decimal.Decimal
	ValorTexto      *string
	IDFilial        *int
	IDTipoVenda     *int
	IDModalidadeFin *int
	DataInicio      time.Time
	DataFim         *time.Time
	Ativo           bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
