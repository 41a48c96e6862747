package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

var _ repository.ParametroRepository = (*ParametroRepo)(nil)

// ParametroRepo implementação do porto ParametroRepository sobre PostgreSQL
// (usável com pool ou tx).
type ParametroRepo struct {
	q Querier
}

// NewParametroRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewParametroRepository(q Querier) *ParametroRepo {
	return &ParametroRepo{q: q}
}

// ResolveDecimal resolve o valor vigente do parâmetro para as dimensões
// informadas. Cada dimensão casa quando o pedido não a informa, quando a
// linha não a restringe ou quando os valores coincidem; entre as linhas
// candidatas vence a com mais dimensões preenchidas e, no empate, a de
// data_inicio mais recente. Devolve nil quando nenhuma linha vigente existe.
func (r *ParametroRepo) ResolveDecimal(codigo string, dataRef time.Time, idFilial, idTipoVenda, idModalidadeFin *int) (*decimal.Decimal, error) {
	query := `
		SELECT valor_decimal
		FROM parametros_gerais
		WHERE codigo = $1
		  AND ativo
		  AND valor_decimal IS NOT NULL
		  AND data_inicio <= $2
		  AND (data_fim IS NULL OR data_fim >= $2)
		  AND ($3::int IS NULL OR id_filial IS NULL OR id_filial = $3)
		  AND ($4::int IS NULL OR id_tipo_venda IS NULL OR id_tipo_venda = $4)
		  AND ($5::int IS NULL OR id_modalidade_fin IS NULL OR id_modalidade_fin = $5)
		ORDER BY
		  (CASE WHEN id_filial IS NOT NULL THEN 1 ELSE 0 END) +
		  (CASE WHEN id_tipo_venda IS NOT NULL THEN 1 ELSE 0 END) +
		  (CASE WHEN id_modalidade_fin IS NOT NULL THEN 1 ELSE 0 END) DESC,
		  data_inicio DESC
		LIMIT 1`
	var valor decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, codigo, dataRef, idFilial, idTipoVenda, idModalidadeFin).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve parametro %s: %w", codigo, err)
	}
	return &valor, nil
}

// ListByCodigo lista todas as vigências cadastradas de um código.
func (r *ParametroRepo) ListByCodigo(codigo string) ([]*entity.ParametroGeral, error) {
	query := `
		SELECT id_parametro, codigo, descricao, valor_decimal, valor_texto,
		       id_filial, id_tipo_venda, id_modalidade_fin,
		       data_inicio, data_fim, ativo, created_at, updated_at
		FROM parametros_gerais
		WHERE codigo = $1
		ORDER BY data_inicio DESC`
	rows, err := r.q.Query(context.Background(), query, codigo)
	if err != nil {
		return nil, fmt.Errorf("list parametros: %w", err)
	}
	defer rows.Close()
	var list []*entity.ParametroGeral
	for rows.Next() {
		var p entity.ParametroGeral
		var descricao *string
		if err := rows.Scan(&p.ID, &p.Codigo, &descricao, &p.ValorDecimal, &p.ValorTexto,
			&p.IDFilial, &p.IDTipoVenda, &p.IDModalidadeFin,
			&p.DataInicio, &p.DataFim, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan parametro: %w", err)
		}
		if descricao != nil {
			p.Descricao = *descricao
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persiste uma nova vigência de parâmetro.
func (r *ParametroRepo) Create(p *entity.ParametroGeral) error {
	query := `
		INSERT INTO parametros_gerais
			(codigo, descricao, valor_decimal, valor_texto,
			 id_filial, id_tipo_venda, id_modalidade_fin,
			 data_inicio, data_fim, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING id_parametro`
	err := r.q.QueryRow(context.Background(), query,
		p.Codigo, p.Descricao, p.ValorDecimal, p.ValorTexto,
		p.IDFilial, p.IDTipoVenda, p.IDModalidadeFin,
		p.DataInicio, p.DataFim, p.Ativo,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert parametro: %w", err)
	}
	return nil
}
