package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

var (
	_ repository.ClienteRepository          = (*ClienteRepo)(nil)
	_ repository.FilialRepository           = (*FilialRepo)(nil)
	_ repository.ProdutoRepository          = (*ProdutoRepo)(nil)
	_ repository.TipoVendaRepository        = (*TipoVendaRepo)(nil)
	_ repository.ModalidadeFinRepository    = (*ModalidadeFinRepo)(nil)
	_ repository.BancoFinanciadorRepository = (*BancoFinanciadorRepo)(nil)
)

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColunas = `
	id_cliente, codigo_sap, razao_social,
	COALESCE(cnpj, ''), COALESCE(inscricao_estadual, ''), COALESCE(email, ''), COALESCE(telefone, ''),
	ativo, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.CodigoSAP, &c.RazaoSocial,
		&c.CNPJ, &c.InscricaoEstadual, &c.Email, &c.Telefone,
		&c.Ativo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID busca um cliente por ID.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE id_cliente = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// ListAtivos lista clientes ativos com paginação.
func (r *ClienteRepo) ListAtivos(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + clienteColunas + `
		FROM clientes WHERE ativo ORDER BY razao_social LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SearchByRazaoSocial busca clientes ativos por trecho da razão social.
func (r *ClienteRepo) SearchByRazaoSocial(termo string, limit int) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + clienteColunas + `
		FROM clientes
		WHERE ativo AND razao_social ILIKE '%' || $1 || '%'
		ORDER BY razao_social LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, termo, limit)
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// FilialRepo implementação do porto FilialRepository sobre PostgreSQL.
type FilialRepo struct {
	q Querier
}

// NewFilialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFilialRepository(q Querier) *FilialRepo {
	return &FilialRepo{q: q}
}

const filialColunas = `
	id_filial, codigo_sap, nome, COALESCE(uf, ''), COALESCE(cidade, ''),
	ativo, created_at, updated_at`

func scanFilial(row pgx.Row) (*entity.Filial, error) {
	var f entity.Filial
	err := row.Scan(&f.ID, &f.CodigoSAP, &f.Nome, &f.UF, &f.Cidade,
		&f.Ativo, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByID busca uma filial por ID.
func (r *FilialRepo) GetByID(id int) (*entity.Filial, error) {
	query := `SELECT ` + filialColunas + ` FROM filiais WHERE id_filial = $1`
	f, err := scanFilial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get filial: %w", err)
	}
	return f, nil
}

// ListAtivas lista as filiais ativas.
func (r *FilialRepo) ListAtivas() ([]*entity.Filial, error) {
	query := `SELECT ` + filialColunas + ` FROM filiais WHERE ativo ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list filiais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Filial
	for rows.Next() {
		f, err := scanFilial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan filial: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `
	id_produto, codigo_sap, descricao,
	COALESCE(sigla_modelo, ''), COALESCE(familia, ''), COALESCE(tipo_produto, ''),
	ativo, created_at, updated_at`

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(&p.ID, &p.CodigoSAP, &p.Descricao,
		&p.SiglaModelo, &p.Familia, &p.TipoProduto,
		&p.Ativo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID busca um produto por ID.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id_produto = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// ListAtivos lista produtos ativos com paginação.
func (r *ProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos WHERE ativo ORDER BY descricao LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SearchByDescricao busca produtos ativos por trecho da descrição.
func (r *ProdutoRepo) SearchByDescricao(termo string, limit int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos
		WHERE ativo AND descricao ILIKE '%' || $1 || '%'
		ORDER BY descricao LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, termo, limit)
	if err != nil {
		return nil, fmt.Errorf("search produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// TipoVendaRepo implementação do porto TipoVendaRepository sobre PostgreSQL.
type TipoVendaRepo struct {
	q Querier
}

// NewTipoVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTipoVendaRepository(q Querier) *TipoVendaRepo {
	return &TipoVendaRepo{q: q}
}

const tipoVendaColunas = `
	id_tipo_venda, nome, COALESCE(codigo_interno, ''),
	flag_financiado, flag_orgao_publico, ativo, created_at, updated_at`

func scanTipoVenda(row pgx.Row) (*entity.TipoVenda, error) {
	var t entity.TipoVenda
	err := row.Scan(&t.ID, &t.Nome, &t.CodigoInterno,
		&t.FlagFinanciado, &t.FlagOrgaoPublico, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID busca um tipo de venda por ID.
func (r *TipoVendaRepo) GetByID(id int) (*entity.TipoVenda, error) {
	query := `SELECT ` + tipoVendaColunas + ` FROM tipos_venda WHERE id_tipo_venda = $1`
	t, err := scanTipoVenda(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo venda: %w", err)
	}
	return t, nil
}

// ListAtivos lista os tipos de venda ativos.
func (r *TipoVendaRepo) ListAtivos() ([]*entity.TipoVenda, error) {
	query := `SELECT ` + tipoVendaColunas + ` FROM tipos_venda WHERE ativo ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tipos venda: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoVenda
	for rows.Next() {
		t, err := scanTipoVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tipo venda: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ModalidadeFinRepo implementação do porto ModalidadeFinRepository sobre PostgreSQL.
type ModalidadeFinRepo struct {
	q Querier
}

// NewModalidadeFinRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewModalidadeFinRepository(q Querier) *ModalidadeFinRepo {
	return &ModalidadeFinRepo{q: q}
}

const modalidadeColunas = `
	id_modalidade_fin, nome, COALESCE(codigo_interno, ''), ativo, created_at, updated_at`

func scanModalidade(row pgx.Row) (*entity.ModalidadeFinanciamento, error) {
	var m entity.ModalidadeFinanciamento
	err := row.Scan(&m.ID, &m.Nome, &m.CodigoInterno, &m.Ativo, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID busca uma modalidade de financiamento por ID.
func (r *ModalidadeFinRepo) GetByID(id int) (*entity.ModalidadeFinanciamento, error) {
	query := `SELECT ` + modalidadeColunas + ` FROM modalidades_financiamento WHERE id_modalidade_fin = $1`
	m, err := scanModalidade(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modalidade: %w", err)
	}
	return m, nil
}

// ListAtivas lista as modalidades de financiamento ativas.
func (r *ModalidadeFinRepo) ListAtivas() ([]*entity.ModalidadeFinanciamento, error) {
	query := `SELECT ` + modalidadeColunas + ` FROM modalidades_financiamento WHERE ativo ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list modalidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.ModalidadeFinanciamento
	for rows.Next() {
		m, err := scanModalidade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan modalidade: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// BancoFinanciadorRepo implementação do porto BancoFinanciadorRepository sobre PostgreSQL.
type BancoFinanciadorRepo struct {
	q Querier
}

// NewBancoFinanciadorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBancoFinanciadorRepository(q Querier) *BancoFinanciadorRepo {
	return &BancoFinanciadorRepo{q: q}
}

const bancoColunas = `
	id_banco_financiador, COALESCE(codigo_sap, ''), nome, ativo, created_at, updated_at`

func scanBanco(row pgx.Row) (*entity.BancoFinanciador, error) {
	var b entity.BancoFinanciador
	err := row.Scan(&b.ID, &b.CodigoSAP, &b.Nome, &b.Ativo, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByID busca um banco financiador por ID.
func (r *BancoFinanciadorRepo) GetByID(id int) (*entity.BancoFinanciador, error) {
	query := `SELECT ` + bancoColunas + ` FROM bancos_financiadores WHERE id_banco_financiador = $1`
	b, err := scanBanco(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banco financiador: %w", err)
	}
	return b, nil
}

// ListAtivos lista os bancos financiadores ativos.
func (r *BancoFinanciadorRepo) ListAtivos() ([]*entity.BancoFinanciador, error) {
	query := `SELECT ` + bancoColunas + ` FROM bancos_financiadores WHERE ativo ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bancos financiadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.BancoFinanciador
	for rows.Next() {
		b, err := scanBanco(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banco financiador: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
