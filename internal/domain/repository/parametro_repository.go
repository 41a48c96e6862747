package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equipamax/margem-api/internal/domain/entity"
)

// ParametroRepository porta de persistência de ParametroGeral e resolução
// do valor vigente.
type ParametroRepository interface {
	// ResolveDecimal devolve o valor decimal do parâmetro mais específico
	// vigente em dataRef para as dimensões informadas (nil = sem filtro).
	// Devolve nil quando nenhuma linha vigente existe.
	ResolveDecimal(codigo string, dataRef time.Time, idFilial, idTipoVenda, idModalidadeFin *int) (*decimal.Decimal, error)
	ListByCodigo(codigo string) ([]*entity.ParametroGeral, error)
	Create(p *entity.ParametroGeral) error
}
