// Package margem implementa o motor de cálculo de margem de contribuição:
// a partir dos dados comerciais de uma venda proposta (máquina, preço,
// financiamento, custos adicionais) e dos parâmetros de negócio vigentes,
// produz o demonstrativo completo de impostos, CMV, lucro bruto, custo
// financeiro, comissão e margem de contribuição, espelhando a planilha
// comercial da concessionária.
//
// O motor não faz I/O: parâmetros e configuração de DN chegam pelos
// resolvers injetados. Cada chamada é uma computação pura sobre a entrada.
package margem

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equipamax/margem-api/pkg/logger"
)

// Códigos esperados em margem_parametro_geral.
const (
	ParamICMSVenda             = "ICMS_VENDA"
	ParamPisCofinsVenda        = "PIS_COFINS_VENDA"
	ParamICMSPisCofinsCompra   = "ICMS_PIS_COFINS_COMPRA"
	ParamPisCofinsCompra       = "PIS_COFINS_COMPRA"
	ParamCreditoImpFreteCompra = "CREDITO_IMPOSTOS_FRETE_COMPRA"
	ParamCreditoImpFreteVenda  = "CREDITO_IMPOSTOS_FRETE_VENDA"
	ParamPDIGarantia           = "PDI_GARANTIA_PERC"
	ParamTaxaJurosMensal       = "TAXA_JUROS_MENSAL"
	ParamComissaoBruta         = "COMISSAO_BRUTA_PERC"
	ParamComissaoDSR           = "COMISSAO_DSR_PERC"
	ParamComissaoEncargos      = "COMISSAO_ENCARGOS_PERC"
	ParamCartaFianca           = "CARTA_FIANCA_PERC"
)

// Defaults aplicados quando o parâmetro não está cadastrado.
var (
	defaultICMSVenda             = decimal.RequireFromString("0.03")
	defaultPisCofinsVenda        = decimal.RequireFromString("0.00")
	defaultICMSPisCofinsCompra   = decimal.RequireFromString("0.03")
	defaultPisCofinsCompra       = decimal.RequireFromString("0.00")
	defaultCreditoImpFreteCompra = decimal.RequireFromString("0.00")
	defaultCreditoImpFreteVenda  = decimal.RequireFromString("0.00")
	defaultPDIGarantia           = decimal.RequireFromString("0.02")
	defaultTaxaJurosMensal       = decimal.RequireFromString("0.0172")
	defaultComissaoBruta         = decimal.RequireFromString("0.006")
	defaultComissaoDSR           = decimal.RequireFromString("0.20")
	defaultComissaoEncargos      = decimal.RequireFromString("0.3595")
	defaultCartaFianca           = decimal.RequireFromString("0.00")
)

// ParametroResolver resolve um parâmetro decimal vigente na data de
// referência, preferindo a linha mais específica (filial, tipo de venda,
// modalidade). nil sem erro significa parâmetro não cadastrado.
type ParametroResolver interface {
	ObterParametroDecimal(codigo string, dataRef time.Time, idFilial, idTipoVenda, idModalidadeFin *int) (*decimal.Decimal, error)
}

// ConfigDNResolver resolve a configuração de DN pela chave composta exata.
// nil sem erro significa combinação não cadastrada.
type ConfigDNResolver interface {
	ObterConfigDN(consulta ConsultaDN) (*ConfigDN, error)
}

// parametrosNegocio taxas resolvidas para um cálculo.
type parametrosNegocio struct {
	icmsVenda             decimal.Decimal
	pisCofinsVenda        decimal.Decimal
	icmsPisCofinsCompra   decimal.Decimal
	pisCofinsCompra       decimal.Decimal
	creditoImpFreteCompra decimal.Decimal
	creditoImpFreteVenda  decimal.Decimal
	pdiGarantia           decimal.Decimal
	taxaJurosMensal       decimal.Decimal
	comissaoBruta         decimal.Decimal
	comissaoDSR           decimal.Decimal
	comissaoEncargos      decimal.Decimal
	cartaFianca           decimal.Decimal
}

// Calculadora orquestra o cálculo de margem.
type Calculadora struct {
	parametros ParametroResolver
	configDN   ConfigDNResolver
	log        *logger.Logger
}

// NewCalculadora constrói o motor com os resolvers injetados.
// log pode ser nil (eventos de default suprimidos, útil em testes).
func NewCalculadora(parametros ParametroResolver, configDN ConfigDNResolver, log *logger.Logger) *Calculadora {
	return &Calculadora{parametros: parametros, configDN: configDN, log: log}
}

// Calcular executa o pipeline completo e devolve o demonstrativo.
// Regras de negócio violadas retornam *ErroRegraNegocio; falhas dos
// resolvers propagam sem tratamento.
func (c *Calculadora) Calcular(entrada EntradaCalculo) (*ResultadoCalculo, error) {
	dataReserva := entrada.DataReserva
	if dataReserva.IsZero() {
		dataReserva = time.Now()
	}

	// DN (custo base da máquina) - célula E22 da planilha.
	// Ano/mês saem da previsão de entrega; sem previsão, da data da reserva.
	dataDN := dataReserva
	if entrada.PrevisaoEntrega != nil {
		dataDN = *entrada.PrevisaoEntrega
	}
	dnConfig, err := c.configDN.ObterConfigDN(ConsultaDN{
		IDProduto:       entrada.IDProduto,
		IDFilial:        entrada.IDFilial,
		IDTipoVenda:     entrada.IDTipoVenda,
		IDModalidadeFin: entrada.IDModalidadeFin,
		PossuiAF:        entrada.PossuiAF,
		Ano:             dataDN.Year(),
		Mes:             int(dataDN.Month()),
	})
	if err != nil {
		return nil, err
	}
	if dnConfig == nil {
		return nil, erroRegra("Não foi encontrada configuração de DN para a combinação informada. " +
			"Revise previsão de entrega, produto, filial, tipo de venda e modalidade.")
	}

	// Valor de venda (célula E14)
	valorVendaTotal := q2(decimal.NewFromInt(int64(entrada.Quantidade)).Mul(entrada.ValorVendaUnitario))
	if !valorVendaTotal.GreaterThan(decimal.Zero) {
		return nil, erroRegra("Valor de venda total deve ser maior que zero.")
	}

	// Parâmetros (impostos, comissão, juros, etc.) vigentes na data da reserva
	params, err := c.carregarParametros(dataReserva, entrada)
	if err != nil {
		return nil, err
	}

	// Impostos de venda (célula E16: ICMS + PIS/COFINS)
	impostosVendaICMS := q2(valorVendaTotal.Mul(params.icmsVenda))
	impostosVendaPisCofins := q2(valorVendaTotal.Mul(params.pisCofinsVenda))
	impostosVendaTotal := impostosVendaICMS.Add(impostosVendaPisCofins)

	// CMV (E20): DN máquina (E22), impostos compra (E24), opcionais (E28),
	// frete compra (E39), crédito imposto frete (E40), mão de obra (E37)
	valorDN := q2(dnConfig.ValorDN)

	impostosCompraICMSPisCofins := q2(valorDN.Mul(params.icmsPisCofinsCompra))
	impostosCompraPisCofins := q2(valorDN.Mul(params.pisCofinsCompra))
	impostosCompraTotal := impostosCompraICMSPisCofins.Add(impostosCompraPisCofins)

	valorOpcionais := q2(entrada.ValorOpcionais)
	freteCompra := q2(entrada.FreteCompra)
	custoMaoObra := q2(entrada.CustoMaoObra)

	creditoImpostosFreteCompra := q2(freteCompra.Mul(params.creditoImpFreteCompra))

	cmvTotal := q2(valorDN.
		Sub(impostosCompraTotal).
		Add(valorOpcionais).
		Add(freteCompra).
		Sub(creditoImpostosFreteCompra).
		Add(custoMaoObra))

	// Custos adicionais e lucro bruto (E45, E46)
	contratoManutencao := q2(entrada.ContratoManutencao)
	percPDIGarantia := entrada.PercPDIGarantia
	if percPDIGarantia.IsZero() {
		percPDIGarantia = params.pdiGarantia
	}
	valorPDIGarantia := q2(valorVendaTotal.Mul(percPDIGarantia))

	lucroBrutoValor := q2(valorVendaTotal.
		Sub(impostosVendaTotal).
		Sub(cmvTotal).
		Sub(contratoManutencao).
		Sub(valorPDIGarantia))
	margemBrutaPercent := q6(lucroBrutoValor.Div(valorVendaTotal))

	// Fluxo de pagamento e custo financeiro (E51 / O21)
	percEntrada := entrada.PercEntrada
	if percEntrada.IsNegative() || percEntrada.GreaterThan(um) {
		return nil, erroRegra("% de entrada deve estar entre 0 e 1.")
	}

	baseFinanciado := valorVendaTotal // simplificação: toda a venda compõe a base
	valorEntrada := q2(baseFinanciado.Mul(percEntrada))
	intervalo := entrada.IntervaloParcelasDias
	if intervalo == 0 {
		intervalo = 30
	}

	fluxoParcelas, err := montarFluxoPagamento(
		baseFinanciado,
		valorEntrada,
		entrada.QtdParcelas,
		entrada.PrazoPrimeiraParcelaDias,
		intervalo,
		params.taxaJurosMensal,
	)
	if err != nil {
		return nil, err
	}
	custoFinanceiroTotal := decimal.Zero
	for _, parcela := range fluxoParcelas {
		custoFinanceiroTotal = custoFinanceiroTotal.Add(parcela.CustoFinanceiro)
	}
	custoFinanceiroTotal = q2(custoFinanceiroTotal)

	// Comissão do vendedor (E54-E57)
	comissaoBruta := q2(valorVendaTotal.Mul(params.comissaoBruta))
	comissaoDSR := q2(comissaoBruta.Mul(params.comissaoDSR))
	comissaoEncargos := q2(comissaoBruta.Add(comissaoDSR).Mul(params.comissaoEncargos))
	comissaoTotal := comissaoBruta.Add(comissaoDSR).Add(comissaoEncargos)

	// Carta fiança, frete venda e margem de contribuição (E59, E60)
	freteVenda := q2(entrada.FreteVenda)
	creditoImpostosFreteVenda := q2(freteVenda.Mul(params.creditoImpFreteVenda))

	percCartaFianca := entrada.PercCartaFianca
	if percCartaFianca.IsZero() {
		percCartaFianca = params.cartaFianca
	}
	valorCartaFianca := q2(valorVendaTotal.Mul(percCartaFianca))

	valorCortesia := q2(entrada.ValorCortesia)

	margemContribValor := q2(lucroBrutoValor.
		Sub(freteVenda).
		Add(creditoImpostosFreteVenda).
		Sub(custoFinanceiroTotal).
		Sub(valorCartaFianca).
		Sub(valorCortesia).
		Sub(comissaoTotal))
	margemContribPercent := q6(margemContribValor.Div(valorVendaTotal))

	return &ResultadoCalculo{
		ValorVendaTotal: valorVendaTotal,

		ImpostosVendaTotal:  impostosVendaTotal,
		ValorDN:             valorDN,
		ImpostosCompraTotal: impostosCompraTotal,
		CMVTotal:            cmvTotal,

		ValorOpcionais:             valorOpcionais,
		FreteCompra:                freteCompra,
		CreditoImpostosFreteCompra: creditoImpostosFreteCompra,
		CustoMaoObra:               custoMaoObra,
		ContratoManutencao:         contratoManutencao,
		ValorPDIGarantia:           valorPDIGarantia,

		LucroBrutoValor:    lucroBrutoValor,
		MargemBrutaPercent: margemBrutaPercent,

		FreteVenda:                freteVenda,
		CreditoImpostosFreteVenda: creditoImpostosFreteVenda,
		CustoFinanceiroTotal:      custoFinanceiroTotal,
		ValorCartaFianca:          valorCartaFianca,
		ValorCortesia:             valorCortesia,

		ComissaoBruta:    comissaoBruta,
		ComissaoDSR:      comissaoDSR,
		ComissaoEncargos: comissaoEncargos,
		ComissaoTotal:    comissaoTotal,

		MargemContribValor:   margemContribValor,
		MargemContribPercent: margemContribPercent,

		FluxoParcelas: fluxoParcelas,
	}, nil
}

// carregarParametros resolve as doze taxas de negócio na data da reserva.
func (c *Calculadora) carregarParametros(dataRef time.Time, entrada EntradaCalculo) (parametrosNegocio, error) {
	idFilial := &entrada.IDFilial
	idTipoVenda := &entrada.IDTipoVenda
	idModalidadeFin := entrada.IDModalidadeFin

	var p parametrosNegocio
	var err error

	carrega := func(destino *decimal.Decimal, codigo string, def decimal.Decimal) {
		if err != nil {
			return
		}
		*destino, err = c.obterParamOuDefault(codigo, dataRef, idFilial, idTipoVenda, idModalidadeFin, def)
	}

	carrega(&p.icmsVenda, ParamICMSVenda, defaultICMSVenda)
	carrega(&p.pisCofinsVenda, ParamPisCofinsVenda, defaultPisCofinsVenda)
	carrega(&p.icmsPisCofinsCompra, ParamICMSPisCofinsCompra, defaultICMSPisCofinsCompra)
	carrega(&p.pisCofinsCompra, ParamPisCofinsCompra, defaultPisCofinsCompra)
	carrega(&p.creditoImpFreteCompra, ParamCreditoImpFreteCompra, defaultCreditoImpFreteCompra)
	carrega(&p.creditoImpFreteVenda, ParamCreditoImpFreteVenda, defaultCreditoImpFreteVenda)
	carrega(&p.pdiGarantia, ParamPDIGarantia, defaultPDIGarantia)
	carrega(&p.taxaJurosMensal, ParamTaxaJurosMensal, defaultTaxaJurosMensal)
	carrega(&p.comissaoBruta, ParamComissaoBruta, defaultComissaoBruta)
	carrega(&p.comissaoDSR, ParamComissaoDSR, defaultComissaoDSR)
	carrega(&p.comissaoEncargos, ParamComissaoEncargos, defaultComissaoEncargos)
	carrega(&p.cartaFianca, ParamCartaFianca, defaultCartaFianca)

	return p, err
}

// obterParamOuDefault busca o parâmetro; na ausência aplica o default
// documentado e emite um evento observável (nunca fatal).
func (c *Calculadora) obterParamOuDefault(
	codigo string,
	dataRef time.Time,
	idFilial, idTipoVenda, idModalidadeFin *int,
	def decimal.Decimal,
) (decimal.Decimal, error) {
	valor, err := c.parametros.ObterParametroDecimal(codigo, dataRef, idFilial, idTipoVenda, idModalidadeFin)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if valor == nil {
		if c.log != nil {
			c.log.Warn().
				Str("event", "margem.parametro_default").
				Str("codigo", codigo).
				Str("default", def.String()).
				Msg("parâmetro não encontrado, usando default")
		}
		return def, nil
	}
	return *valor, nil
}
