package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma reserva.
const (
	ReservaStatusRascunho  = 1
	ReservaStatusCalculada = 2
	ReservaStatusAprovada  = 3
	ReservaStatusCancelada = 4
)

// Tipos de linha de comissão gravados em ReservaItemComissao.
const (
	ComissaoTipoBruta   = "BRUTA"
	ComissaoTipoDSR     = "DSR"
	ComissaoTipoEncargo = "ENCARGO"
)

// Reserva cabeçalho da negociação: cliente, filial, condição comercial e
// vendedor responsável. Os itens carregam o demonstrativo de margem.
type Reserva struct {
	ID                 int64
	CodigoReserva      string
	IDCliente          int64
	IDFilial           int
	IDTipoVenda        int
	IDModalidadeFin    *int
	IDBancoFinanciador *int
	PossuiAF           bool
	DataReserva        time.Time
	PrevisaoEntrega    *time.Time
	Observacoes        string
	Status             int
	CriadoPor          string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Itens []ReservaItem
}

// ReservaItem demonstrativo de margem de um produto da reserva. Guarda o
// snapshot completo do cálculo: os percentuais vigentes no momento ficam
// congelados mesmo que os parâmetros mudem depois.
type ReservaItem struct {
	ID        int64
	IDReserva int64
	IDProduto int64
	IDDN      int64

	Quantidade         int
	ValorVendaUnitario decimal.Decimal
	ValorVendaTotal    decimal.Decimal
	ValorDNUnitario    decimal.Decimal
	ValorDNTotal       decimal.Decimal

	ImpostosVendaPercent decimal.Decimal
	ImpostosVendaValor   decimal.Decimal
	ImpostosCompraValor  decimal.Decimal

	ValorOpcionais            decimal.Decimal
	CustoMaoObra              decimal.Decimal
	FreteCompra               decimal.Decimal
	CreditoImpostosFrete      decimal.Decimal
	ContratoManutencao        decimal.Decimal
	PercPDIGarantia           decimal.Decimal
	ValorPDIGarantia          decimal.Decimal
	FreteVenda                decimal.Decimal
	CreditoImpostosFreteVenda decimal.Decimal
	CustoFinanceiroTotal      decimal.Decimal
	ValorCartaFianca          decimal.Decimal
	ValorCortesia             decimal.Decimal
	ComissaoTotal             decimal.Decimal

	MargemBrutaValor     decimal.Decimal
	MargemBrutaPercent   decimal.Decimal
	MargemContribValor   decimal.Decimal
	MargemContribPercent decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	Fluxos    []ReservaItemFluxo
	Comissoes []ReservaItemComissao
}

// ReservaItemFluxo linha persistida do fluxo financeiro do item.
type ReservaItemFluxo struct {
	ID            int64
	IDReservaItem int64

	TipoParcela   int // 1=entrada, 2=parcela
	NumeroParcela int // 0 para entrada
	PrazoDias     int

	PercentualBase  decimal.Decimal
	ValorNominal    decimal.Decimal
	TaxaEfetiva     decimal.Decimal
	ValorPresente   decimal.Decimal
	CustoFinanceiro decimal.Decimal
}

// ReservaItemComissao parcela da comissão aplicada sobre o item, aberta
// por tipo (bruta, DSR, encargos).
type ReservaItemComissao struct {
	ID            int64
	IDReservaItem int64

	TipoComissao string
	Percentual   decimal.Decimal
	Valor        decimal.Decimal
}
