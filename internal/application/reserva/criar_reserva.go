package reserva

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/application/usecase"
	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/margem"
	"github.com/equipamax/margem-api/internal/domain/repository"
	"github.com/equipamax/margem-api/pkg/formatacao"
	"github.com/equipamax/margem-api/pkg/logger"
)

// CriarReservaUseCase cria a reserva e congela o demonstrativo de margem:
// cabeçalho, item, fluxo financeiro e abertura de comissões numa única
// transação.
type CriarReservaUseCase struct {
	margemUC     *usecase.MargemUseCase
	clienteRepo  repository.ClienteRepository
	configDNRepo repository.ConfigDNRepository
	txRunner     TxRunner
	log          *logger.Logger
}

// NewCriarReservaUseCase constrói o caso de uso de criação de reservas.
func NewCriarReservaUseCase(
	margemUC *usecase.MargemUseCase,
	clienteRepo repository.ClienteRepository,
	configDNRepo repository.ConfigDNRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *CriarReservaUseCase {
	return &CriarReservaUseCase{
		margemUC:     margemUC,
		clienteRepo:  clienteRepo,
		configDNRepo: configDNRepo,
		txRunner:     txRunner,
		log:          log,
	}
}

// Criar valida a entrada, executa o cálculo de margem e persiste a reserva
// com o demonstrativo congelado. O snapshot preserva os percentuais
// vigentes no momento mesmo que os parâmetros mudem depois.
func (uc *CriarReservaUseCase) Criar(ctx context.Context, userID string, in dto.CriarReservaRequest) (*dto.ReservaResponse, error) {
	if in.IDCliente <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.IDCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	entrada, err := uc.margemUC.MontarEntrada(in.Item)
	if err != nil {
		return nil, err
	}
	resultado, err := uc.margemUC.CalcularEntrada(*entrada)
	if err != nil {
		return nil, err
	}

	dn, err := uc.buscarConfigDN(*entrada)
	if err != nil {
		return nil, err
	}
	if dn == nil {
		// o motor já validou a existência; raça com remoção concorrente
		return nil, domain.ErrConflict
	}

	dataReserva := entrada.DataReserva
	if dataReserva.IsZero() {
		dataReserva = time.Now()
	}

	res := montarReserva(userID, in, *entrada, dataReserva)
	item := montarItem(*entrada, resultado, dn)

	err = uc.txRunner.Run(ctx, func(reservaRepo repository.ReservaRepository) error {
		if err := reservaRepo.Create(res); err != nil {
			return err
		}
		item.IDReserva = res.ID
		if err := reservaRepo.CreateItem(item); err != nil {
			return err
		}
		for i := range item.Fluxos {
			item.Fluxos[i].IDReservaItem = item.ID
			if err := reservaRepo.CreateItemFluxo(&item.Fluxos[i]); err != nil {
				return err
			}
		}
		for i := range item.Comissoes {
			item.Comissoes[i].IDReservaItem = item.ID
			if err := reservaRepo.CreateItemComissao(&item.Comissoes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.log != nil {
		uc.log.Info().
			Int64("id_reserva", res.ID).
			Str("codigo_reserva", res.CodigoReserva).
			Int64("id_cliente", res.IDCliente).
			Int("id_filial", res.IDFilial).
			Msg("reserva criada")
	}

	res.Itens = []entity.ReservaItem{*item}
	return ToReservaResponse(res), nil
}

// buscarConfigDN repete a chave de busca do motor para registrar o id da
// configuração usada no snapshot.
func (uc *CriarReservaUseCase) buscarConfigDN(entrada margem.EntradaCalculo) (*entity.ConfigDN, error) {
	ref := entrada.DataReserva
	if ref.IsZero() {
		ref = time.Now()
	}
	if entrada.PrevisaoEntrega != nil {
		ref = *entrada.PrevisaoEntrega
	}
	return uc.configDNRepo.Find(repository.ConfigDNQuery{
		IDProduto:       entrada.IDProduto,
		IDFilial:        entrada.IDFilial,
		IDTipoVenda:     entrada.IDTipoVenda,
		IDModalidadeFin: entrada.IDModalidadeFin,
		PossuiAF:        entrada.PossuiAF,
		Ano:             ref.Year(),
		Mes:             int(ref.Month()),
	})
}

func montarReserva(userID string, in dto.CriarReservaRequest, entrada margem.EntradaCalculo, dataReserva time.Time) *entity.Reserva {
	return &entity.Reserva{
		CodigoReserva:      "RSV-" + uuid.New().String()[:8],
		IDCliente:          in.IDCliente,
		IDFilial:           entrada.IDFilial,
		IDTipoVenda:        entrada.IDTipoVenda,
		IDModalidadeFin:    entrada.IDModalidadeFin,
		IDBancoFinanciador: in.IDBancoFinanciador,
		PossuiAF:           entrada.PossuiAF,
		DataReserva:        dataReserva,
		PrevisaoEntrega:    entrada.PrevisaoEntrega,
		Observacoes:        in.Observacoes,
		Status:             entity.ReservaStatusCalculada,
		CriadoPor:          userID,
	}
}

func montarItem(entrada margem.EntradaCalculo, r *margem.ResultadoCalculo, dn *entity.ConfigDN) *entity.ReservaItem {
	item := &entity.ReservaItem{
		IDProduto:  entrada.IDProduto,
		IDDN:       dn.ID,
		Quantidade: entrada.Quantidade,

		ValorVendaUnitario: entrada.ValorVendaUnitario,
		ValorVendaTotal:    r.ValorVendaTotal,
		ValorDNUnitario:    dn.ValorDN,
		ValorDNTotal:       r.ValorDN,

		ImpostosVendaPercent: fracao(r.ImpostosVendaTotal, r.ValorVendaTotal),
		ImpostosVendaValor:   r.ImpostosVendaTotal,
		ImpostosCompraValor:  r.ImpostosCompraTotal,

		ValorOpcionais:            r.ValorOpcionais,
		CustoMaoObra:              r.CustoMaoObra,
		FreteCompra:               r.FreteCompra,
		CreditoImpostosFrete:      r.CreditoImpostosFreteCompra,
		ContratoManutencao:        r.ContratoManutencao,
		PercPDIGarantia:           fracao(r.ValorPDIGarantia, r.ValorVendaTotal),
		ValorPDIGarantia:          r.ValorPDIGarantia,
		FreteVenda:                r.FreteVenda,
		CreditoImpostosFreteVenda: r.CreditoImpostosFreteVenda,
		CustoFinanceiroTotal:      r.CustoFinanceiroTotal,
		ValorCartaFianca:          r.ValorCartaFianca,
		ValorCortesia:             r.ValorCortesia,
		ComissaoTotal:             r.ComissaoTotal,

		MargemBrutaValor:     r.LucroBrutoValor,
		MargemBrutaPercent:   r.MargemBrutaPercent,
		MargemContribValor:   r.MargemContribValor,
		MargemContribPercent: r.MargemContribPercent,
	}

	for _, f := range r.FluxoParcelas {
		item.Fluxos = append(item.Fluxos, entity.ReservaItemFluxo{
			TipoParcela:     f.TipoParcela,
			NumeroParcela:   f.NumeroParcela,
			PrazoDias:       f.PrazoDias,
			PercentualBase:  f.PercentualBase,
			ValorNominal:    f.ValorNominal,
			TaxaEfetiva:     f.TaxaEfetiva,
			ValorPresente:   f.ValorPresente,
			CustoFinanceiro: f.CustoFinanceiro,
		})
	}

	item.Comissoes = []entity.ReservaItemComissao{
		{
			TipoComissao: entity.ComissaoTipoBruta,
			Percentual:   fracao(r.ComissaoBruta, r.ValorVendaTotal),
			Valor:        r.ComissaoBruta,
		},
		{
			TipoComissao: entity.ComissaoTipoDSR,
			Percentual:   fracao(r.ComissaoDSR, r.ComissaoBruta),
			Valor:        r.ComissaoDSR,
		},
		{
			TipoComissao: entity.ComissaoTipoEncargo,
			Percentual:   fracao(r.ComissaoEncargos, r.ComissaoBruta.Add(r.ComissaoDSR)),
			Valor:        r.ComissaoEncargos,
		},
	}
	return item
}

// fracao devolve valor/base com 6 casas, ou zero quando a base não é positiva.
func fracao(valor, base decimal.Decimal) decimal.Decimal {
	if !base.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return valor.Div(base).Round(6)
}

// ToReservaResponse converte a entidade completa para o DTO de resposta.
func ToReservaResponse(res *entity.Reserva) *dto.ReservaResponse {
	out := &dto.ReservaResponse{
		ID:                 res.ID,
		CodigoReserva:      res.CodigoReserva,
		IDCliente:          res.IDCliente,
		IDFilial:           res.IDFilial,
		IDTipoVenda:        res.IDTipoVenda,
		IDModalidadeFin:    res.IDModalidadeFin,
		IDBancoFinanciador: res.IDBancoFinanciador,
		PossuiAF:           res.PossuiAF,
		DataReserva:        res.DataReserva,
		PrevisaoEntrega:    res.PrevisaoEntrega,
		Observacoes:        res.Observacoes,
		Status:             res.Status,
		CreatedAt:          res.CreatedAt,
	}
	for _, it := range res.Itens {
		item := dto.ReservaItemResponse{
			ID:         it.ID,
			IDProduto:  it.IDProduto,
			IDDN:       it.IDDN,
			Quantidade: it.Quantidade,

			ValorVendaUnitario: it.ValorVendaUnitario,
			ValorVendaTotal:    it.ValorVendaTotal,
			ValorDNUnitario:    it.ValorDNUnitario,
			ValorDNTotal:       it.ValorDNTotal,

			ImpostosVendaValor:   it.ImpostosVendaValor,
			ImpostosCompraValor:  it.ImpostosCompraValor,
			CustoFinanceiroTotal: it.CustoFinanceiroTotal,
			ComissaoTotal:        it.ComissaoTotal,

			MargemBrutaValor:     it.MargemBrutaValor,
			MargemBrutaPercent:   it.MargemBrutaPercent,
			MargemContribValor:   it.MargemContribValor,
			MargemContribPercent: it.MargemContribPercent,
		}
		for _, f := range it.Fluxos {
			item.Fluxo = append(item.Fluxo, dto.FluxoParcelaResponse{
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
		for _, c := range it.Comissoes {
			item.Comissoes = append(item.Comissoes, dto.ReservaComissaoResponse{
				TipoComissao: c.TipoComissao,
				Percentual:   c.Percentual,
				Valor:        c.Valor,
			})
		}
		out.Itens = append(out.Itens, item)
	}
	return out
}
