package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/application/usecase"
	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/margem"
)

// MargemHandler trata o cálculo de margem (protegido).
type MargemHandler struct {
	uc *usecase.MargemUseCase
}

// NewMargemHandler constrói o handler.
func NewMargemHandler(uc *usecase.MargemUseCase) *MargemHandler {
	return &MargemHandler{uc: uc}
}

// Calcular godoc
// @Summary      Calcular margem de uma negociação
// @Tags         margem
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcularMargemRequest  true  "Dados comerciais da negociação"
// @Success      200   {object}  dto.CalcularMargemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/margem/calcular [post]
func (h *MargemHandler) Calcular(c *fiber.Ctx) error {
	var in dto.CalcularMargemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Calcular(in)
	if err != nil {
		var regra *margem.ErroRegraNegocio
		if errors.As(err, &regra) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "REGRA_NEGOCIO", Message: regra.Mensagem})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados comerciais fora dos limites aceitos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
