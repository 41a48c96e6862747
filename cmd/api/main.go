package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/equipamax/margem-api/internal/application/auth"
	appreserva "github.com/equipamax/margem-api/internal/application/reserva"
	"github.com/equipamax/margem-api/internal/application/usecase"
	"github.com/equipamax/margem-api/internal/domain/margem"
	infrapdf "github.com/equipamax/margem-api/internal/infrastructure/pdf"
	"github.com/equipamax/margem-api/internal/infrastructure/postgres"
	httpRouter "github.com/equipamax/margem-api/internal/interfaces/http"
	"github.com/equipamax/margem-api/pkg/config"
	"github.com/equipamax/margem-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	filialRepo := postgres.NewFilialRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	tipoVendaRepo := postgres.NewTipoVendaRepository(pool)
	modalidadeRepo := postgres.NewModalidadeFinRepository(pool)
	bancoRepo := postgres.NewBancoFinanciadorRepository(pool)
	parametroRepo := postgres.NewParametroRepository(pool)
	configDNRepo := postgres.NewConfigDNRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	calc := margem.NewCalculadora(
		usecase.NewParametroResolver(parametroRepo),
		usecase.NewConfigDNResolver(configDNRepo),
		log,
	)
	margemUC := usecase.NewMargemUseCase(calc)
	catalogoUC := usecase.NewCatalogoUseCase(
		clienteRepo, filialRepo, produtoRepo, tipoVendaRepo, modalidadeRepo, bancoRepo,
	)

	criarReservaUC := appreserva.NewCriarReservaUseCase(
		margemUC, clienteRepo, configDNRepo, txRunner, log,
	)
	consultarReservaUC := appreserva.NewConsultarReservaUseCase(reservaRepo)

	// PDF: demonstrativo de margem da reserva
	pdfGenerator := infrapdf.NewMarotoDemonstrativoGenerator()
	reservaPDFUC := appreserva.NewPDFUseCase(
		reservaRepo, clienteRepo, filialRepo, produtoRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, filialRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Margem API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		MargemUC:    margemUC,
		CriarUC:     criarReservaUC,
		ConsultarUC: consultarReservaUC,
		PDFUC:       reservaPDFUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
