package margem

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de linha do fluxo financeiro.
const (
	TipoParcelaEntrada = 1 // entrada (número 0)
	TipoParcelaParcela = 2 // parcela 1..N
)

// ConfigDN configuração de Desconto Negociado: o custo base negociado da
// máquina para a combinação produto/filial/tipo de venda/modalidade/AF
// vigente no ano/mês de referência.
type ConfigDN struct {
	IDDN    int64
	ValorDN decimal.Decimal
	Ano     int
	Mes     *int
}

// ConsultaDN chave composta de busca da configuração de DN.
// Modalidade nula e mês ausente entram como zero na chave.
type ConsultaDN struct {
	IDProduto       int64
	IDFilial        int
	IDTipoVenda     int
	IDModalidadeFin *int
	PossuiAF        bool
	Ano             int
	Mes             int
}

// EntradaCalculo snapshot imutável dos dados comerciais de um cálculo de
// margem. Valores opcionais ausentes entram como zero; percentuais de
// override zerados caem no parâmetro geral correspondente.
type EntradaCalculo struct {
	IDProduto       int64
	IDFilial        int
	IDTipoVenda     int
	IDModalidadeFin *int
	PossuiAF        bool

	Quantidade         int
	ValorVendaUnitario decimal.Decimal

	DataReserva     time.Time
	PrevisaoEntrega *time.Time

	PercEntrada              decimal.Decimal // fração 0..1 do valor de venda
	QtdParcelas              int
	PrazoPrimeiraParcelaDias int
	IntervaloParcelasDias    int // 0 = usa 30 dias

	ValorOpcionais     decimal.Decimal
	CustoMaoObra       decimal.Decimal
	FreteCompra        decimal.Decimal
	FreteVenda         decimal.Decimal
	ContratoManutencao decimal.Decimal
	ValorCortesia      decimal.Decimal

	PercPDIGarantia decimal.Decimal // 0 = usa parâmetro PDI_GARANTIA_PERC
	PercCartaFianca decimal.Decimal // 0 = usa parâmetro CARTA_FIANCA_PERC
}

// FluxoParcela uma linha do fluxo financeiro: entrada ou parcela, com valor
// nominal, taxa efetiva do prazo, valor presente e custo financeiro
// (nominal - presente).
type FluxoParcela struct {
	TipoParcela   int // 1 = entrada, 2 = parcela
	NumeroParcela int // 0 para entrada
	PrazoDias     int

	PercentualBase  decimal.Decimal // fração do valor financiado
	ValorNominal    decimal.Decimal
	TaxaEfetiva     decimal.Decimal
	ValorPresente   decimal.Decimal
	CustoFinanceiro decimal.Decimal
}

// ResultadoCalculo demonstrativo completo do cálculo de margem, espelhando a
// planilha original. Valores monetários com 2 casas, percentuais com 6.
type ResultadoCalculo struct {
	ValorVendaTotal decimal.Decimal

	ImpostosVendaTotal  decimal.Decimal
	ValorDN             decimal.Decimal
	ImpostosCompraTotal decimal.Decimal
	CMVTotal            decimal.Decimal

	ValorOpcionais             decimal.Decimal
	FreteCompra                decimal.Decimal
	CreditoImpostosFreteCompra decimal.Decimal
	CustoMaoObra               decimal.Decimal
	ContratoManutencao         decimal.Decimal
	ValorPDIGarantia           decimal.Decimal

	LucroBrutoValor    decimal.Decimal
	MargemBrutaPercent decimal.Decimal

	FreteVenda                decimal.Decimal
	CreditoImpostosFreteVenda decimal.Decimal
	CustoFinanceiroTotal      decimal.Decimal
	ValorCartaFianca          decimal.Decimal
	ValorCortesia             decimal.Decimal

	ComissaoBruta    decimal.Decimal
	ComissaoDSR      decimal.Decimal
	ComissaoEncargos decimal.Decimal
	ComissaoTotal    decimal.Decimal

	MargemContribValor   decimal.Decimal
	MargemContribPercent decimal.Decimal

	FluxoParcelas []FluxoParcela
}

// ErroRegraNegocio erro de negócio previsível durante o cálculo de margem.
// A mensagem pode ser apresentada ao usuário final sem detalhe interno.
type ErroRegraNegocio struct {
	Mensagem string
}

func (e *ErroRegraNegocio) Error() string { return e.Mensagem }

func erroRegra(mensagem string) error { return &ErroRegraNegocio{Mensagem: mensagem} }
