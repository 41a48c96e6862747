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

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

// ReservaRepo implementação do porto ReservaRepository sobre PostgreSQL
// (usável com pool ou tx). As escritas do demonstrativo devem rodar dentro
// do TxRunner para manter reserva, itens, fluxos e comissões atômicos.
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

// Create persiste o cabeçalho da reserva e preenche o ID gerado.
func (r *ReservaRepo) Create(reserva *entity.Reserva) error {
	query := `
		INSERT INTO reservas
			(codigo_reserva, id_cliente, id_filial, id_tipo_venda,
			 id_modalidade_fin, id_banco_financiador, possui_af,
			 data_reserva, previsao_entrega, observacoes, status_reserva,
			 criado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		RETURNING id_reserva`
	err := r.q.QueryRow(context.Background(), query,
		reserva.CodigoReserva, reserva.IDCliente, reserva.IDFilial, reserva.IDTipoVenda,
		reserva.IDModalidadeFin, reserva.IDBancoFinanciador, reserva.PossuiAF,
		reserva.DataReserva, reserva.PrevisaoEntrega, reserva.Observacoes, reserva.Status,
		reserva.CriadoPor,
	).Scan(&reserva.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// CreateItem persiste o demonstrativo de um item e preenche o ID gerado.
func (r *ReservaRepo) CreateItem(item *entity.ReservaItem) error {
	query := `
		INSERT INTO reserva_itens
			(id_reserva, id_produto, id_dn, quantidade,
			 valor_venda_unitario, valor_venda_total,
			 valor_dn_unitario, valor_dn_total,
			 impostos_venda_percent, impostos_venda_valor, impostos_compra_valor,
			 valor_opcionais, custo_mao_obra, frete_compra, credito_impostos_frete,
			 contrato_manutencao, perc_pdi_garantia, valor_pdi_garantia,
			 frete_venda, credito_impostos_frete_venda, custo_financeiro_total,
			 valor_carta_fianca, valor_cortesia, comissao_total,
			 margem_bruta_valor, margem_bruta_percent,
			 margem_contrib_valor, margem_contrib_percent,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		        now(), now())
		RETURNING id_reserva_item`
	err := r.q.QueryRow(context.Background(), query,
		item.IDReserva, item.IDProduto, item.IDDN, item.Quantidade,
		item.ValorVendaUnitario, item.ValorVendaTotal,
		item.ValorDNUnitario, item.ValorDNTotal,
		item.ImpostosVendaPercent, item.ImpostosVendaValor, item.ImpostosCompraValor,
		item.ValorOpcionais, item.CustoMaoObra, item.FreteCompra, item.CreditoImpostosFrete,
		item.ContratoManutencao, item.PercPDIGarantia, item.ValorPDIGarantia,
		item.FreteVenda, item.CreditoImpostosFreteVenda, item.CustoFinanceiroTotal,
		item.ValorCartaFianca, item.ValorCortesia, item.ComissaoTotal,
		item.MargemBrutaValor, item.MargemBrutaPercent,
		item.MargemContribValor, item.MargemContribPercent,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert reserva item: %w", err)
	}
	return nil
}

// CreateItemFluxo persiste uma linha do fluxo financeiro do item.
func (r *ReservaRepo) CreateItemFluxo(fluxo *entity.ReservaItemFluxo) error {
	query := `
		INSERT INTO reserva_item_fluxos
			(id_reserva_item, tipo_parcela, numero_parcela, prazo_dias,
			 percentual_base, valor_nominal, taxa_efetiva, valor_presente, custo_financeiro,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id_reserva_item_fluxo`
	err := r.q.QueryRow(context.Background(), query,
		fluxo.IDReservaItem, fluxo.TipoParcela, fluxo.NumeroParcela, fluxo.PrazoDias,
		fluxo.PercentualBase, fluxo.ValorNominal, fluxo.TaxaEfetiva, fluxo.ValorPresente, fluxo.CustoFinanceiro,
	).Scan(&fluxo.ID)
	if err != nil {
		return fmt.Errorf("insert reserva item fluxo: %w", err)
	}
	return nil
}

// CreateItemComissao persiste uma linha de comissão do item.
func (r *ReservaRepo) CreateItemComissao(comissao *entity.ReservaItemComissao) error {
	query := `
		INSERT INTO reserva_item_comissoes
			(id_reserva_item, tipo_comissao, percentual, valor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id_reserva_item_comissao`
	err := r.q.QueryRow(context.Background(), query,
		comissao.IDReservaItem, comissao.TipoComissao, comissao.Percentual, comissao.Valor,
	).Scan(&comissao.ID)
	if err != nil {
		return fmt.Errorf("insert reserva item comissao: %w", err)
	}
	return nil
}

const reservaColunas = `
	id_reserva, COALESCE(codigo_reserva, ''), id_cliente, id_filial, id_tipo_venda,
	id_modalidade_fin, id_banco_financiador, possui_af,
	data_reserva, previsao_entrega, COALESCE(observacoes, ''), status_reserva,
	COALESCE(criado_por, ''), created_at, updated_at`

func scanReserva(row pgx.Row) (*entity.Reserva, error) {
	var res entity.Reserva
	err := row.Scan(
		&res.ID, &res.CodigoReserva, &res.IDCliente, &res.IDFilial, &res.IDTipoVenda,
		&res.IDModalidadeFin, &res.IDBancoFinanciador, &res.PossuiAF,
		&res.DataReserva, &res.PrevisaoEntrega, &res.Observacoes, &res.Status,
		&res.CriadoPor, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByID carrega a reserva completa: cabeçalho, itens, fluxos e comissões.
func (r *ReservaRepo) GetByID(id int64) (*entity.Reserva, error) {
	query := `SELECT ` + reservaColunas + ` FROM reservas WHERE id_reserva = $1`
	res, err := scanReserva(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}

	itens, err := r.listItens(id)
	if err != nil {
		return nil, err
	}
	res.Itens = itens
	return res, nil
}

func (r *ReservaRepo) listItens(idReserva int64) ([]entity.ReservaItem, error) {
	query := `
		SELECT id_reserva_item, id_reserva, id_produto, id_dn, quantidade,
		       valor_venda_unitario, valor_venda_total,
		       valor_dn_unitario, valor_dn_total,
		       impostos_venda_percent, impostos_venda_valor, impostos_compra_valor,
		       valor_opcionais, custo_mao_obra, frete_compra, credito_impostos_frete,
		       contrato_manutencao, perc_pdi_garantia, valor_pdi_garantia,
		       frete_venda, credito_impostos_frete_venda, custo_financeiro_total,
		       valor_carta_fianca, valor_cortesia, comissao_total,
		       margem_bruta_valor, margem_bruta_percent,
		       margem_contrib_valor, margem_contrib_percent,
		       created_at, updated_at
		FROM reserva_itens WHERE id_reserva = $1 ORDER BY id_reserva_item`
	rows, err := r.q.Query(context.Background(), query, idReserva)
	if err != nil {
		return nil, fmt.Errorf("list reserva itens: %w", err)
	}
	defer rows.Close()

	var itens []entity.ReservaItem
	for rows.Next() {
		var it entity.ReservaItem
		if err := rows.Scan(
			&it.ID, &it.IDReserva, &it.IDProduto, &it.IDDN, &it.Quantidade,
			&it.ValorVendaUnitario, &it.ValorVendaTotal,
			&it.ValorDNUnitario, &it.ValorDNTotal,
			&it.ImpostosVendaPercent, &it.ImpostosVendaValor, &it.ImpostosCompraValor,
			&it.ValorOpcionais, &it.CustoMaoObra, &it.FreteCompra, &it.CreditoImpostosFrete,
			&it.ContratoManutencao, &it.PercPDIGarantia, &it.ValorPDIGarantia,
			&it.FreteVenda, &it.CreditoImpostosFreteVenda, &it.CustoFinanceiroTotal,
			&it.ValorCartaFianca, &it.ValorCortesia, &it.ComissaoTotal,
			&it.MargemBrutaValor, &it.MargemBrutaPercent,
			&it.MargemContribValor, &it.MargemContribPercent,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reserva item: %w", err)
		}
		itens = append(itens, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range itens {
		fluxos, err := r.listFluxos(itens[i].ID)
		if err != nil {
			return nil, err
		}
		comissoes, err := r.listComissoes(itens[i].ID)
		if err != nil {
			return nil, err
		}
		itens[i].Fluxos = fluxos
		itens[i].Comissoes = comissoes
	}
	return itens, nil
}

func (r *ReservaRepo) listFluxos(idItem int64) ([]entity.ReservaItemFluxo, error) {
	query := `
		SELECT id_reserva_item_fluxo, id_reserva_item, tipo_parcela, numero_parcela,
		       prazo_dias, percentual_base, valor_nominal, taxa_efetiva,
		       valor_presente, custo_financeiro
		FROM reserva_item_fluxos WHERE id_reserva_item = $1
		ORDER BY tipo_parcela, numero_parcela`
	rows, err := r.q.Query(context.Background(), query, idItem)
	if err != nil {
		return nil, fmt.Errorf("list fluxos: %w", err)
	}
	defer rows.Close()
	var fluxos []entity.ReservaItemFluxo
	for rows.Next() {
		var f entity.ReservaItemFluxo
		if err := rows.Scan(&f.ID, &f.IDReservaItem, &f.TipoParcela, &f.NumeroParcela,
			&f.PrazoDias, &f.PercentualBase, &f.ValorNominal, &f.TaxaEfetiva,
			&f.ValorPresente, &f.CustoFinanceiro); err != nil {
			return nil, fmt.Errorf("scan fluxo: %w", err)
		}
		fluxos = append(fluxos, f)
	}
	return fluxos, rows.Err()
}

func (r *ReservaRepo) listComissoes(idItem int64) ([]entity.ReservaItemComissao, error) {
	query := `
		SELECT id_reserva_item_comissao, id_reserva_item, tipo_comissao, percentual, valor
		FROM reserva_item_comissoes WHERE id_reserva_item = $1
		ORDER BY id_reserva_item_comissao`
	rows, err := r.q.Query(context.Background(), query, idItem)
	if err != nil {
		return nil, fmt.Errorf("list comissoes: %w", err)
	}
	defer rows.Close()
	var comissoes []entity.ReservaItemComissao
	for rows.Next() {
		var c entity.ReservaItemComissao
		if err := rows.Scan(&c.ID, &c.IDReservaItem, &c.TipoComissao, &c.Percentual, &c.Valor); err != nil {
			return nil, fmt.Errorf("scan comissao: %w", err)
		}
		comissoes = append(comissoes, c)
	}
	return comissoes, rows.Err()
}

// ListByFilial lista cabeçalhos de reservas da filial, mais recentes primeiro.
func (r *ReservaRepo) ListByFilial(idFilial int, limit, offset int) ([]*entity.Reserva, error) {
	query := `
		SELECT ` + reservaColunas + `
		FROM reservas WHERE id_filial = $1
		ORDER BY data_reserva DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, idFilial, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		res, err := scanReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// UpdateStatus muda o status da reserva.
func (r *ReservaRepo) UpdateStatus(id int64, status int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE reservas SET status_reserva = $2, updated_at = now() WHERE id_reserva = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update status reserva: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
