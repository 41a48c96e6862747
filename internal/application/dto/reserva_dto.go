package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarReservaRequest entrada para criar uma reserva e congelar o
// demonstrativo de margem do item.
type CriarReservaRequest struct {
	IDCliente          int64  `json:"id_cliente" validate:"required"`
	IDBancoFinanciador *int   `json:"id_banco_financiador"`
	Observacoes        string `json:"observacoes" validate:"max=1000"`

	Item CalcularMargemRequest `json:"item" validate:"required"`
}

// ReservaItemResponse demonstrativo congelado de um item da reserva.
type ReservaItemResponse struct {
	ID         int64 `json:"id"`
	IDProduto  int64 `json:"id_produto"`
	IDDN       int64 `json:"id_dn"`
	Quantidade int   `json:"quantidade"`

	ValorVendaUnitario decimal.Decimal `json:"valor_venda_unitario"`
	ValorVendaTotal    decimal.Decimal `json:"valor_venda_total"`
	ValorDNUnitario    decimal.Decimal `json:"valor_dn_unitario"`
	ValorDNTotal       decimal.Decimal `json:"valor_dn_total"`

	ImpostosVendaValor   decimal.Decimal `json:"impostos_venda_valor"`
	ImpostosCompraValor  decimal.Decimal `json:"impostos_compra_valor"`
	CustoFinanceiroTotal decimal.Decimal `json:"custo_financeiro_total"`
	ComissaoTotal        decimal.Decimal `json:"comissao_total"`

	MargemBrutaValor     decimal.Decimal `json:"margem_bruta_valor"`
	MargemBrutaPercent   decimal.Decimal `json:"margem_bruta_percent"`
	MargemContribValor   decimal.Decimal `json:"margem_contrib_valor"`
	MargemContribPercent decimal.Decimal `json:"margem_contrib_percent"`

	Fluxo     []FluxoParcelaResponse    `json:"fluxo"`
	Comissoes []ReservaComissaoResponse `json:"comissoes"`
}

// ReservaComissaoResponse linha de comissão congelada do item.
type ReservaComissaoResponse struct {
	TipoComissao string          `json:"tipo_comissao"`
	Percentual   decimal.Decimal `json:"percentual"`
	Valor        decimal.Decimal `json:"valor"`
}

// ReservaResponse saída de uma reserva com o demonstrativo.
type ReservaResponse struct {
	ID                 int64      `json:"id"`
	CodigoReserva      string     `json:"codigo_reserva"`
	IDCliente          int64      `json:"id_cliente"`
	IDFilial           int        `json:"id_filial"`
	IDTipoVenda        int        `json:"id_tipo_venda"`
	IDModalidadeFin    *int       `json:"id_modalidade_fin,omitempty"`
	IDBancoFinanciador *int       `json:"id_banco_financiador,omitempty"`
	PossuiAF           bool       `json:"possui_af"`
	DataReserva        time.Time  `json:"data_reserva"`
	PrevisaoEntrega    *time.Time `json:"previsao_entrega,omitempty"`
	Observacoes        string     `json:"observacoes,omitempty"`
	Status             int        `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`

	Itens []ReservaItemResponse `json:"itens"`
}

// ReservaListResponse lista paginada de reservas (só cabeçalhos).
type ReservaListResponse struct {
	Items []ReservaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
