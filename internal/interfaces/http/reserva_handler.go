package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/application/reserva"
	"github.com/equipamax/margem-api/internal/domain"
	"github.com/equipamax/margem-api/internal/domain/margem"
)

// ReservaHandler trata criação e consulta de reservas (protegido).
type ReservaHandler struct {
	criarUC     *reserva.CriarReservaUseCase
	consultarUC *reserva.ConsultarReservaUseCase
	pdfUC       *reserva.PDFUseCase
}

// NewReservaHandler constrói o handler.
func NewReservaHandler(criarUC *reserva.CriarReservaUseCase, consultarUC *reserva.ConsultarReservaUseCase, pdfUC *reserva.PDFUseCase) *ReservaHandler {
	return &ReservaHandler{criarUC: criarUC, consultarUC: consultarUC, pdfUC: pdfUC}
}

// Criar godoc
// @Summary      Criar reserva com demonstrativo congelado
// @Tags         reservas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarReservaRequest  true  "Cliente, observações e item da negociação"
// @Success      201   {object}  dto.ReservaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reservas [post]
func (h *ReservaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.criarUC.Criar(c.Context(), GetUserID(c), in)
	if err != nil {
		var regra *margem.ErroRegraNegocio
		switch {
		case errors.As(err, &regra):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "REGRA_NEGOCIO", Message: regra.Mensagem})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados da reserva fora dos limites aceitos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CLIENTE_NOT_FOUND", Message: "o cliente não existe"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "configuração de DN alterada durante a gravação"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar reserva por ID
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da reserva"
// @Success      200  {object}  dto.ReservaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id} [get]
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.consultarUC.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas da filial do usuário
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ReservaListResponse
// @Router       /api/reservas [get]
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.consultarUC.ListByFilial(GetFilial(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Demonstrativo de margem em PDF
// @Tags         reservas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID da reserva"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/pdf [get]
func (h *ReservaHandler) PDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdf, err := h.pdfUC.Gerar(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="reserva-%d.pdf"`, id))
	return c.Send(pdf)
}
