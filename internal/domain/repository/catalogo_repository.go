package repository

import "github.com/equipamax/margem-api/internal/domain/entity"

// ClienteRepository porta de persistência de Cliente.
type ClienteRepository interface {
	GetByID(id int64) (*entity.Cliente, error)
	ListAtivos(limit, offset int) ([]*entity.Cliente, error)
	SearchByRazaoSocial(termo string, limit int) ([]*entity.Cliente, error)
}

// FilialRepository porta de persistência de Filial.
type FilialRepository interface {
	GetByID(id int) (*entity.Filial, error)
	ListAtivas() ([]*entity.Filial, error)
}

// ProdutoRepository porta de persistência de Produto.
type ProdutoRepository interface {
	GetByID(id int64) (*entity.Produto, error)
	ListAtivos(limit, offset int) ([]*entity.Produto, error)
	SearchByDescricao(termo string, limit int) ([]*entity.Produto, error)
}

// TipoVendaRepository porta de persistência de TipoVenda.
type TipoVendaRepository interface {
	GetByID(id int) (*entity.TipoVenda, error)
	ListAtivos() ([]*entity.TipoVenda, error)
}

// ModalidadeFinRepository porta de persistência de ModalidadeFinanciamento.
type ModalidadeFinRepository interface {
	GetByID(id int) (*entity.ModalidadeFinanciamento, error)
	ListAtivas() ([]*entity.ModalidadeFinanciamento, error)
}

// BancoFinanciadorRepository porta de persistência de BancoFinanciador.
type BancoFinanciadorRepository interface {
	GetByID(id int) (*entity.BancoFinanciador, error)
	ListAtivos() ([]*entity.BancoFinanciador, error)
}
