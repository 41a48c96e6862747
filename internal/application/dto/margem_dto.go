package dto

import "github.com/shopspring/decimal"

// CalcularMargemRequest entrada do cálculo de margem. Percentuais em fração
// (0.03 = 3%). perc_pdi_garantia e perc_carta_fianca zerados usam o
// parâmetro geral vigente.
type CalcularMargemRequest struct {
	IDProduto       int64 `json:"id_produto" validate:"required"`
	IDFilial        int   `json:"id_filial" validate:"required"`
	IDTipoVenda     int   `json:"id_tipo_venda" validate:"required"`
	IDModalidadeFin *int  `json:"id_modalidade_fin"`
	PossuiAF        bool  `json:"possui_af"`

	Quantidade         int             `json:"quantidade" validate:"required,min=1"`
	ValorVendaUnitario decimal.Decimal `json:"valor_venda_unitario"`

	DataReserva     string `json:"data_reserva"`     // YYYY-MM-DD, vazio = hoje
	PrevisaoEntrega string `json:"previsao_entrega"` // YYYY-MM-DD, opcional

	PercEntrada              decimal.Decimal `json:"perc_entrada"`
	QtdParcelas              int             `json:"qtd_parcelas"`
	PrazoPrimeiraParcelaDias int             `json:"prazo_primeira_parcela_dias"`
	IntervaloParcelasDias    int             `json:"intervalo_parcelas_dias"` // 0 = 30 dias

	ValorOpcionais     decimal.Decimal `json:"valor_opcionais"`
	CustoMaoObra       decimal.Decimal `json:"custo_mao_obra"`
	FreteCompra        decimal.Decimal `json:"frete_compra"`
	FreteVenda         decimal.Decimal `json:"frete_venda"`
	ContratoManutencao decimal.Decimal `json:"contrato_manutencao"`
	ValorCortesia      decimal.Decimal `json:"valor_cortesia"`

	PercPDIGarantia decimal.Decimal `json:"perc_pdi_garantia"`
	PercCartaFianca decimal.Decimal `json:"perc_carta_fianca"`
}

// FluxoParcelaResponse linha do fluxo financeiro na resposta.
type FluxoParcelaResponse struct {
	TipoParcela     int             `json:"tipo_parcela"` // 1=entrada, 2=parcela
	NumeroParcela   int             `json:"numero_parcela"`
	PrazoDias       int             `json:"prazo_dias"`
	PercentualBase  decimal.Decimal `json:"percentual_base"`
	ValorNominal    decimal.Decimal `json:"valor_nominal"`
	TaxaEfetiva     decimal.Decimal `json:"taxa_efetiva"`
	ValorPresente   decimal.Decimal `json:"valor_presente"`
	CustoFinanceiro decimal.Decimal `json:"custo_financeiro"`

	ValorNominalFormatado string `json:"valor_nominal_formatado"`
}

// CalcularMargemResponse demonstrativo completo do cálculo. Os campos
// *_formatado vêm prontos para exibição em pt-BR.
type CalcularMargemResponse struct {
	ValorVendaTotal decimal.Decimal `json:"valor_venda_total"`

	ImpostosVendaTotal  decimal.Decimal `json:"impostos_venda_total"`
	ValorDN             decimal.Decimal `json:"valor_dn"`
	ImpostosCompraTotal decimal.Decimal `json:"impostos_compra_total"`
	CMVTotal            decimal.Decimal `json:"cmv_total"`

	ValorOpcionais             decimal.Decimal `json:"valor_opcionais"`
	FreteCompra                decimal.Decimal `json:"frete_compra"`
	CreditoImpostosFreteCompra decimal.Decimal `json:"credito_impostos_frete_compra"`
	CustoMaoObra               decimal.Decimal `json:"custo_mao_obra"`
	ContratoManutencao         decimal.Decimal `json:"contrato_manutencao"`
	ValorPDIGarantia           decimal.Decimal `json:"valor_pdi_garantia"`

	LucroBrutoValor    decimal.Decimal `json:"lucro_bruto_valor"`
	MargemBrutaPercent decimal.Decimal `json:"margem_bruta_percent"`

	FreteVenda                decimal.Decimal `json:"frete_venda"`
	CreditoImpostosFreteVenda decimal.Decimal `json:"credito_impostos_frete_venda"`
	CustoFinanceiroTotal      decimal.Decimal `json:"custo_financeiro_total"`
	ValorCartaFianca          decimal.Decimal `json:"valor_carta_fianca"`
	ValorCortesia             decimal.Decimal `json:"valor_cortesia"`

	ComissaoBruta    decimal.Decimal `json:"comissao_bruta"`
	ComissaoDSR      decimal.Decimal `json:"comissao_dsr"`
	ComissaoEncargos decimal.Decimal `json:"comissao_encargos"`
	ComissaoTotal    decimal.Decimal `json:"comissao_total"`

	MargemContribValor   decimal.Decimal `json:"margem_contrib_valor"`
	MargemContribPercent decimal.Decimal `json:"margem_contrib_percent"`

	FluxoParcelas []FluxoParcelaResponse `json:"fluxo_parcelas"`

	ValorVendaTotalFormatado      string `json:"valor_venda_total_formatado"`
	CMVTotalFormatado             string `json:"cmv_total_formatado"`
	LucroBrutoFormatado           string `json:"lucro_bruto_formatado"`
	MargemBrutaFormatada          string `json:"margem_bruta_formatada"`
	CustoFinanceiroTotalFormatado string `json:"custo_financeiro_total_formatado"`
	ComissaoTotalFormatada        string `json:"comissao_total_formatada"`
	MargemContribValorFormatado   string `json:"margem_contrib_valor_formatado"`
	MargemContribFormatada        string `json:"margem_contrib_formatada"`
}
