package repository

import "github.com/equipamax/margem-api/internal/domain/entity"

// ReservaRepository porta de persistência da reserva e do seu demonstrativo.
// Create* numa mesma transação quando executados dentro do TxRunner.
type ReservaRepository interface {
	Create(reserva *entity.Reserva) error
	CreateItem(item *entity.ReservaItem) error
	CreateItemFluxo(fluxo *entity.ReservaItemFluxo) error
	CreateItemComissao(comissao *entity.ReservaItemComissao) error
	// GetByID devolve a reserva com itens, fluxos e comissões carregados.
	GetByID(id int64) (*entity.Reserva, error)
	ListByFilial(idFilial int, limit, offset int) ([]*entity.Reserva, error)
	UpdateStatus(id int64, status int) error
}
