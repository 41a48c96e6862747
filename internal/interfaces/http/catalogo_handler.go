package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equipamax/margem-api/internal/application/dto"
	"github.com/equipamax/margem-api/internal/application/usecase"
)

// CatalogoHandler trata as consultas do catálogo comercial (protegido).
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler constrói o handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ListClientes godoc
// @Summary      Listar clientes ativos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Trecho da razão social"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ClienteListResponse
// @Router       /api/catalogo/clientes [get]
func (h *CatalogoHandler) ListClientes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.uc.ListClientes(c.Query("q"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListFiliais godoc
// @Summary      Listar filiais ativas
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FilialResponse
// @Router       /api/catalogo/filiais [get]
func (h *CatalogoHandler) ListFiliais(c *fiber.Ctx) error {
	out, err := h.uc.ListFiliais()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProdutos godoc
// @Summary      Listar produtos ativos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Trecho da descrição"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/catalogo/produtos [get]
func (h *CatalogoHandler) ListProdutos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.uc.ListProdutos(c.Query("q"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListTiposVenda godoc
// @Summary      Listar tipos de venda ativos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TipoVendaResponse
// @Router       /api/catalogo/tipos-venda [get]
func (h *CatalogoHandler) ListTiposVenda(c *fiber.Ctx) error {
	out, err := h.uc.ListTiposVenda()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListModalidades godoc
// @Summary      Listar modalidades de financiamento ativas
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ModalidadeFinResponse
// @Router       /api/catalogo/modalidades [get]
func (h *CatalogoHandler) ListModalidades(c *fiber.Ctx) error {
	out, err := h.uc.ListModalidades()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListBancos godoc
// @Summary      Listar bancos financiadores ativos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BancoFinanciadorResponse
// @Router       /api/catalogo/bancos [get]
func (h *CatalogoHandler) ListBancos(c *fiber.Ctx) error {
	out, err := h.uc.ListBancos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
