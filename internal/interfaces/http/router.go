package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equipamax/margem-api/internal/application/auth"
	"github.com/equipamax/margem-api/internal/application/reserva"
	"github.com/equipamax/margem-api/internal/application/usecase"
	"github.com/equipamax/margem-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogoUC  *usecase.CatalogoUseCase
	MargemUC    *usecase.MargemUseCase
	CriarUC     *reserva.CriarReservaUseCase
	ConsultarUC *reserva.ConsultarReservaUseCase
	PDFUC       *reserva.PDFUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido, leitura)
	catalogo := protected.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogo.Get("/clientes", catalogoHandler.ListClientes)
	catalogo.Get("/filiais", catalogoHandler.ListFiliais)
	catalogo.Get("/produtos", catalogoHandler.ListProdutos)
	catalogo.Get("/tipos-venda", catalogoHandler.ListTiposVenda)
	catalogo.Get("/modalidades", catalogoHandler.ListModalidades)
	catalogo.Get("/bancos", catalogoHandler.ListBancos)

	// Cálculo de margem (protegido)
	margemGroup := protected.Group("/margem")
	margemHandler := NewMargemHandler(deps.MargemUC)
	margemGroup.Post("/calcular", margemHandler.Calcular)

	// Reservas (protegido; criação restrita a admin e vendedor)
	reservas := protected.Group("/reservas")
	reservaHandler := NewReservaHandler(deps.CriarUC, deps.ConsultarUC, deps.PDFUC)
	reservas.Post("/", RequireRole(entity.RoleAdmin, entity.RoleVendedor), reservaHandler.Criar)
	reservas.Get("/", reservaHandler.List)
	reservas.Get("/:id", reservaHandler.GetByID)
	reservas.Get("/:id/pdf", reservaHandler.PDF)
}
