package usecase

import (
	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

// CatalogoUseCase consultas de leitura do catálogo comercial: clientes,
// filiais, produtos e tabelas de domínio da negociação.
type CatalogoUseCase struct {
	clienteRepo    repository.ClienteRepository
	filialRepo     repository.FilialRepository
	produtoRepo    repository.ProdutoRepository
	tipoVendaRepo  repository.TipoVendaRepository
	modalidadeRepo repository.ModalidadeFinRepository
	bancoRepo      repository.BancoFinanciadorRepository
}

// NewCatalogoUseCase constrói o caso de uso do catálogo.
func NewCatalogoUseCase(
	clienteRepo repository.ClienteRepository,
	filialRepo repository.FilialRepository,
	produtoRepo repository.ProdutoRepository,
	tipoVendaRepo repository.TipoVendaRepository,
	modalidadeRepo repository.ModalidadeFinRepository,
	bancoRepo repository.BancoFinanciadorRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{
		clienteRepo:    clienteRepo,
		filialRepo:     filialRepo,
		produtoRepo:    produtoRepo,
		tipoVendaRepo:  tipoVendaRepo,
		modalidadeRepo: modalidadeRepo,
		bancoRepo:      bancoRepo,
	}
}

// ListClientes lista clientes ativos, opcionalmente filtrados por trecho da
// razão social.
func (uc *CatalogoUseCase) ListClientes(termo string, page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Cliente
		err  error
	)
	if termo != "" {
		list, err = uc.clienteRepo.SearchByRazaoSocial(termo, page.Limit)
	} else {
		list, err = uc.clienteRepo.ListAtivos(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ClienteResponse{
			ID:          c.ID,
			CodigoSAP:   c.CodigoSAP,
			RazaoSocial: c.RazaoSocial,
			CNPJ:        c.CNPJ,
			Email:       c.Email,
			Telefone:    c.Telefone,
		})
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListFiliais lista as filiais ativas.
func (uc *CatalogoUseCase) ListFiliais() ([]dto.FilialResponse, error) {
	list, err := uc.filialRepo.ListAtivas()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FilialResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.FilialResponse{
			ID:        f.ID,
			CodigoSAP: f.CodigoSAP,
			Nome:      f.Nome,
			UF:        f.UF,
			Cidade:    f.Cidade,
		})
	}
	return items, nil
}

// ListProdutos lista produtos ativos, opcionalmente filtrados por trecho da
// descrição.
func (uc *CatalogoUseCase) ListProdutos(termo string, page dto.PageRequest) (*dto.ProdutoListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Produto
		err  error
	)
	if termo != "" {
		list, err = uc.produtoRepo.SearchByDescricao(termo, page.Limit)
	} else {
		list, err = uc.produtoRepo.ListAtivos(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProdutoResponse{
			ID:          p.ID,
			CodigoSAP:   p.CodigoSAP,
			Descricao:   p.Descricao,
			SiglaModelo: p.SiglaModelo,
			Familia:     p.Familia,
			TipoProduto: p.TipoProduto,
		})
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListTiposVenda lista os tipos de venda ativos.
func (uc *CatalogoUseCase) ListTiposVenda() ([]dto.TipoVendaResponse, error) {
	list, err := uc.tipoVendaRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoVendaResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TipoVendaResponse{
			ID:               t.ID,
			Nome:             t.Nome,
			FlagFinanciado:   t.FlagFinanciado,
			FlagOrgaoPublico: t.FlagOrgaoPublico,
		})
	}
	return items, nil
}

// ListModalidades lista as modalidades de financiamento ativas.
func (uc *CatalogoUseCase) ListModalidades() ([]dto.ModalidadeFinResponse, error) {
	list, err := uc.modalidadeRepo.ListAtivas()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModalidadeFinResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ModalidadeFinResponse{ID: m.ID, Nome: m.Nome})
	}
	return items, nil
}

// ListBancos lista os bancos financiadores ativos.
func (uc *CatalogoUseCase) ListBancos() ([]dto.BancoFinanciadorResponse, error) {
	list, err := uc.bancoRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BancoFinanciadorResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BancoFinanciadorResponse{ID: b.ID, Nome: b.Nome})
	}
	return items, nil
}
