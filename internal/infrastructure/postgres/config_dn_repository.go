package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

var _ repository.ConfigDNRepository = (*ConfigDNRepo)(nil)

// ConfigDNRepo implementação do porto ConfigDNRepository sobre PostgreSQL
// (usável com pool ou tx).
type ConfigDNRepo struct {
	q Querier
}

// NewConfigDNRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConfigDNRepository(q Querier) *ConfigDNRepo {
	return &ConfigDNRepo{q: q}
}

const configDNColunas = `
	id_dn, id_produto, id_filial, id_tipo_venda, id_modalidade_fin,
	possui_af, ano, mes, data_referencia, valor_dn, origem_dado,
	created_at, updated_at`

// Find busca a configuração de DN pela chave composta exata. Modalidade
// nula e mês ausente comparam como zero. Havendo mais de uma linha, vale a
// de data_referencia mais recente.
func (r *ConfigDNRepo) Find(q repository.ConfigDNQuery) (*entity.ConfigDN, error) {
	query := `
		SELECT ` + configDNColunas + `
		FROM configs_dn
		WHERE id_produto = $1
		  AND id_filial = $2
		  AND id_tipo_venda = $3
		  AND COALESCE(id_modalidade_fin, 0) = COALESCE($4::int, 0)
		  AND possui_af = $5
		  AND ano = $6
		  AND COALESCE(mes, 0) = $7
		ORDER BY data_referencia DESC NULLS LAST
		LIMIT 1`
	row := r.q.QueryRow(context.Background(), query,
		q.IDProduto, q.IDFilial, q.IDTipoVenda, q.IDModalidadeFin, q.PossuiAF, q.Ano, q.Mes)
	dn, err := scanConfigDN(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find config dn: %w", err)
	}
	return dn, nil
}

// GetByID busca uma configuração de DN por ID.
func (r *ConfigDNRepo) GetByID(id int64) (*entity.ConfigDN, error) {
	query := `SELECT ` + configDNColunas + ` FROM configs_dn WHERE id_dn = $1`
	dn, err := scanConfigDN(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config dn: %w", err)
	}
	return dn, nil
}

// Create persiste uma nova configuração de DN.
func (r *ConfigDNRepo) Create(dn *entity.ConfigDN) error {
	query := `
		INSERT INTO configs_dn
			(id_produto, id_filial, id_tipo_venda, id_modalidade_fin,
			 possui_af, ano, mes, data_referencia, valor_dn, origem_dado,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING id_dn`
	err := r.q.QueryRow(context.Background(), query,
		dn.IDProduto, dn.IDFilial, dn.IDTipoVenda, dn.IDModalidadeFin,
		dn.PossuiAF, dn.Ano, dn.Mes, dn.DataReferencia, dn.ValorDN, dn.OrigemDado,
	).Scan(&dn.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert config dn: %w", err)
	}
	return nil
}

func scanConfigDN(row pgx.Row) (*entity.ConfigDN, error) {
	var dn entity.ConfigDN
	var origem *string
	err := row.Scan(
		&dn.ID, &dn.IDProduto, &dn.IDFilial, &dn.IDTipoVenda, &dn.IDModalidadeFin,
		&dn.PossuiAF, &dn.Ano, &dn.Mes, &dn.DataReferencia, &dn.ValorDN, &origem,
		&dn.CreatedAt, &dn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if origem != nil {
		dn.OrigemDado = *origem
	}
	return &dn, nil
}
