package reserva

import (
	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/domain/repository"
)

// ConsultarReservaUseCase consultas de leitura das reservas.
type ConsultarReservaUseCase struct {
	reservaRepo repository.ReservaRepository
}

// NewConsultarReservaUseCase constrói o caso de uso de consulta.
func NewConsultarReservaUseCase(reservaRepo repository.ReservaRepository) *ConsultarReservaUseCase {
	return &ConsultarReservaUseCase{reservaRepo: reservaRepo}
}

// GetByID devolve a reserva completa ou nil quando não existe.
func (uc *ConsultarReservaUseCase) GetByID(id int64) (*dto.ReservaResponse, error) {
	res, err := uc.reservaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return ToReservaResponse(res), nil
}

// ListByFilial lista os cabeçalhos das reservas da filial.
func (uc *ConsultarReservaUseCase) ListByFilial(idFilial int, page dto.PageRequest) (*dto.ReservaListResponse, error) {
	page.DefaultPage()
	list, err := uc.reservaRepo.ListByFilial(idFilial, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservaResponse, 0, len(list))
	for _, res := range list {
		items = append(items, *ToReservaResponse(res))
	}
	return &dto.ReservaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
