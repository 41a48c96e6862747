package reserva

import (
	"context"

	"github.com/equipamax/margem-api/internal/domain/entity"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com o repositório de
// reservas atado a ela. Erro de fn desfaz tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(reservaRepo repository.ReservaRepository) error) error
}

// DemonstrativoDados dados prontos para o demonstrativo em PDF: a reserva
// completa mais os nomes resolvidos do catálogo.
type DemonstrativoDados struct {
	Reserva *entity.Reserva

	RazaoSocialCliente string
	NomeFilial         string
	DescricaoProdutos  map[int64]string // id_produto -> descrição
}

// DemonstrativoPDFGenerator gera o demonstrativo de margem em PDF.
type DemonstrativoPDFGenerator interface {
	Gerar(dados DemonstrativoDados) ([]byte, error)
}
