package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/margem"
	"github.com/equipamax/margem-api/internal/domain/repository"
	"github.com/equipamax/margem-api/pkg/formatacao"
)

// Limites de sanidade da entrada comercial.
const (
	maxQtdParcelas = 120
	maxPrazoDias   = 3650
)

var umInteiro = decimal.NewFromInt(1)

// parametroResolverAdapter liga o porto de persistência ao resolver do motor.
type parametroResolverAdapter struct {
	repo repository.ParametroRepository
}

func (a parametroResolverAdapter) ObterParametroDecimal(codigo string, dataRef time.Time, idFilial, idTipoVenda, idModalidadeFin *int) (*decimal.Decimal, error) {
	return a.repo.ResolveDecimal(codigo, dataRef, idFilial, idTipoVenda, idModalidadeFin)
}

// configDNResolverAdapter liga o porto de persistência ao resolver do motor.
type configDNResolverAdapter struct {
	repo repository.ConfigDNRepository
}

func (a configDNResolverAdapter) ObterConfigDN(consulta margem.ConsultaDN) (*margem.ConfigDN, error) {
	dn, err := a.repo.Find(repository.ConfigDNQuery{
		IDProduto:       consulta.IDProduto,
		IDFilial:        consulta.IDFilial,
		IDTipoVenda:     consulta.IDTipoVenda,
		IDModalidadeFin: consulta.IDModalidadeFin,
		PossuiAF:        consulta.PossuiAF,
		Ano:             consulta.Ano,
		Mes:             consulta.Mes,
	})
	if err != nil {
		return nil, err
	}
	if dn == nil {
		return nil, nil
	}
	mes := dn.Mes
	return &margem.ConfigDN{
		IDDN:    dn.ID,
		ValorDN: dn.ValorDN,
		Ano:     dn.Ano,
		Mes:     mes,
	}, nil
}

// MargemUseCase caso de uso do cálculo de margem: valida a entrada
// comercial, delega ao motor e monta o demonstrativo de resposta.
type MargemUseCase struct {
	calc *margem.Calculadora
}

// NewMargemUseCase constrói o caso de uso com o motor ligado aos repositórios.
func NewMargemUseCase(calc *margem.Calculadora) *MargemUseCase {
	return &MargemUseCase{calc: calc}
}

// Calcular valida os dados comerciais e executa o cálculo de margem.
// Entradas fora dos limites devolvem domain.ErrInvalidInput; violações de
// regra de negócio propagam como *margem.ErroRegraNegocio.
func (uc *MargemUseCase) Calcular(in dto.CalcularMargemRequest) (*dto.CalcularMargemResponse, error) {
	entrada, err := montarEntrada(in)
	if err != nil {
		return nil, err
	}

	resultado, err := uc.calc.Calcular(*entrada)
	if err != nil {
		return nil, err
	}
	return toCalcularMargemResponse(resultado), nil
}

// MontarEntrada expõe a validação e a conversão da entrada para reuso na
// criação de reservas.
func (uc *MargemUseCase) MontarEntrada(in dto.CalcularMargemRequest) (*margem.EntradaCalculo, error) {
	return montarEntrada(in)
}

// CalcularEntrada executa o motor sobre uma entrada já validada.
func (uc *MargemUseCase) CalcularEntrada(entrada margem.EntradaCalculo) (*margem.ResultadoCalculo, error) {
	return uc.calc.Calcular(entrada)
}

func montarEntrada(in dto.CalcularMargemRequest) (*margem.EntradaCalculo, error) {
	if in.IDProduto <= 0 || in.IDFilial <= 0 || in.IDTipoVenda <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.ValorVendaUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.QtdParcelas < 0 || in.QtdParcelas > maxQtdParcelas {
		return nil, domain.ErrInvalidInput
	}
	if in.PrazoPrimeiraParcelaDias < 0 || in.PrazoPrimeiraParcelaDias > maxPrazoDias {
		return nil, domain.ErrInvalidInput
	}
	if in.IntervaloParcelasDias < 0 || in.IntervaloParcelasDias > maxPrazoDias {
		return nil, domain.ErrInvalidInput
	}
	if in.PercEntrada.IsNegative() || in.PercEntrada.GreaterThan(umInteiro) {
		return nil, domain.ErrInvalidInput
	}
	if in.PercPDIGarantia.IsNegative() || in.PercPDIGarantia.GreaterThan(umInteiro) {
		return nil, domain.ErrInvalidInput
	}
	if in.PercCartaFianca.IsNegative() || in.PercCartaFianca.GreaterThan(umInteiro) {
		return nil, domain.ErrInvalidInput
	}
	for _, v := range []decimal.Decimal{
		in.ValorOpcionais, in.CustoMaoObra, in.FreteCompra,
		in.FreteVenda, in.ContratoManutencao, in.ValorCortesia,
	} {
		if v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	dataReserva, err := parseData(in.DataReserva)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var previsao *time.Time
	if in.PrevisaoEntrega != "" {
		p, err := time.Parse("2006-01-02", in.PrevisaoEntrega)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		previsao = &p
	}

	return &margem.EntradaCalculo{
		IDProduto:       in.IDProduto,
		IDFilial:        in.IDFilial,
		IDTipoVenda:     in.IDTipoVenda,
		IDModalidadeFin: in.IDModalidadeFin,
		PossuiAF:        in.PossuiAF,

		Quantidade:         in.Quantidade,
		ValorVendaUnitario: in.ValorVendaUnitario,

		DataReserva:     dataReserva,
		PrevisaoEntrega: previsao,

		PercEntrada:              in.PercEntrada,
		QtdParcelas:              in.QtdParcelas,
		PrazoPrimeiraParcelaDias: in.PrazoPrimeiraParcelaDias,
		IntervaloParcelasDias:    in.IntervaloParcelasDias,

		ValorOpcionais:     in.ValorOpcionais,
		CustoMaoObra:       in.CustoMaoObra,
		FreteCompra:        in.FreteCompra,
		FreteVenda:         in.FreteVenda,
		ContratoManutencao: in.ContratoManutencao,
		ValorCortesia:      in.ValorCortesia,

		PercPDIGarantia: in.PercPDIGarantia,
		PercCartaFianca: in.PercCartaFianca,
	}, nil
}

func parseData(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func toCalcularMargemResponse(r *margem.ResultadoCalculo) *dto.CalcularMargemResponse {
	fluxo := make([]dto.FluxoParcelaResponse, 0, len(r.FluxoParcelas))
	for _, f := range r.FluxoParcelas {
		fluxo = append(fluxo, dto.FluxoParcelaResponse{
			TipoParcela:     f.TipoParcela,
			NumeroParcela:   f.NumeroParcela,
			PrazoDias:       f.PrazoDias,
			PercentualBase:  f.PercentualBase,
			ValorNominal:    f.ValorNominal,
			TaxaEfetiva:     f.TaxaEfetiva,
			ValorPresente:   f.ValorPresente,
			CustoFinanceiro: f.CustoFinanceiro,

			ValorNominalFormatado: formatacao.FormatarBRL(f.ValorNominal),
		})
	}

	return &dto.CalcularMargemResponse{
		ValorVendaTotal: r.ValorVendaTotal,

		ImpostosVendaTotal:  r.ImpostosVendaTotal,
		ValorDN:             r.ValorDN,
		ImpostosCompraTotal: r.ImpostosCompraTotal,
		CMVTotal:            r.CMVTotal,

		ValorOpcionais:             r.ValorOpcionais,
		FreteCompra:                r.FreteCompra,
		CreditoImpostosFreteCompra: r.CreditoImpostosFreteCompra,
		CustoMaoObra:               r.CustoMaoObra,
		ContratoManutencao:         r.ContratoManutencao,
		ValorPDIGarantia:           r.ValorPDIGarantia,

		LucroBrutoValor:    r.LucroBrutoValor,
		MargemBrutaPercent: r.MargemBrutaPercent,

		FreteVenda:                r.FreteVenda,
		CreditoImpostosFreteVenda: r.CreditoImpostosFreteVenda,
		CustoFinanceiroTotal:      r.CustoFinanceiroTotal,
		ValorCartaFianca:          r.ValorCartaFianca,
		ValorCortesia:             r.ValorCortesia,

		ComissaoBruta:    r.ComissaoBruta,
		ComissaoDSR:      r.ComissaoDSR,
		ComissaoEncargos: r.ComissaoEncargos,
		ComissaoTotal:    r.ComissaoTotal,

		MargemContribValor:   r.MargemContribValor,
		MargemContribPercent: r.MargemContribPercent,

		FluxoParcelas: fluxo,

		ValorVendaTotalFormatado:      formatacao.FormatarBRL(r.ValorVendaTotal),
		CMVTotalFormatado:             formatacao.FormatarBRL(r.CMVTotal),
		LucroBrutoFormatado:           formatacao.FormatarBRL(r.LucroBrutoValor),
		MargemBrutaFormatada:          formatacao.FormatarPercentual(r.MargemBrutaPercent),
		CustoFinanceiroTotalFormatado: formatacao.FormatarBRL(r.CustoFinanceiroTotal),
		ComissaoTotalFormatada:        formatacao.FormatarBRL(r.ComissaoTotal),
		MargemContribValorFormatado:   formatacao.FormatarBRL(r.MargemContribValor),
		MargemContribFormatada:        formatacao.FormatarPercentual(r.MargemContribPercent),
	}
}

// NewParametroResolver adapta o repositório ao resolver do motor.
func NewParametroResolver(repo repository.ParametroRepository) margem.ParametroResolver {
	return parametroResolverAdapter{repo: repo}
}

// NewConfigDNResolver adapta o repositório ao resolver do motor.
func NewConfigDNResolver(repo repository.ConfigDNRepository) margem.ConfigDNResolver {
	return configDNResolverAdapter{repo: repo}
}
