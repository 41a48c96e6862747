package reserva

import (
	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

// PDFUseCase gera o demonstrativo de margem da reserva em PDF.
type PDFUseCase struct {
	reservaRepo repository.ReservaRepository
	clienteRepo repository.ClienteRepository
	filialRepo  repository.FilialRepository
	produtoRepo repository.ProdutoRepository
	gerador     DemonstrativoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso de geração de PDF.
func NewPDFUseCase(
	reservaRepo repository.ReservaRepository,
	clienteRepo repository.ClienteRepository,
	filialRepo repository.FilialRepository,
	produtoRepo repository.ProdutoRepository,
	gerador DemonstrativoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		reservaRepo: reservaRepo,
		clienteRepo: clienteRepo,
		filialRepo:  filialRepo,
		produtoRepo: produtoRepo,
		gerador:     gerador,
	}
}

// Gerar monta os dados do demonstrativo e devolve os bytes do PDF.
// Devolve domain.ErrNotFound quando a reserva não existe.
func (uc *PDFUseCase) Gerar(idReserva int64) ([]byte, error) {
	res, err := uc.reservaRepo.GetByID(idReserva)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	dados := DemonstrativoDados{
		Reserva:           res,
		DescricaoProdutos: map[int64]string{},
	}

	if cliente, err := uc.clienteRepo.GetByID(res.IDCliente); err == nil && cliente != nil {
		dados.RazaoSocialCliente = cliente.RazaoSocial
	}
	if filial, err := uc.filialRepo.GetByID(res.IDFilial); err == nil && filial != nil {
		dados.NomeFilial = filial.Nome
	}
	for _, item := range res.Itens {
		if _, ok := dados.DescricaoProdutos[item.IDProduto]; ok {
			continue
		}
		if produto, err := uc.produtoRepo.GetByID(item.IDProduto); err == nil && produto != nil {
			dados.DescricaoProdutos[item.IDProduto] = produto.Descricao
		}
	}

	return uc.gerador.Gerar(dados)
}
