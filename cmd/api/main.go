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
	"github.com/smcotacoes/cotacoes-api/internal/application/auth"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
	"github.com/smcotacoes/cotacoes-api/internal/infrastructure/postgres"
	httpRouter "github.com/smcotacoes/cotacoes-api/internal/interfaces/http"
	"github.com/smcotacoes/cotacoes-api/pkg/config"
	"github.com/smcotacoes/cotacoes-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	itemRepo := postgres.NewQuoteItemRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	shareRepo := postgres.NewShareRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:      cfg.JWT.Secret,
		SessionDays: cfg.JWT.SessionDays,
		Issuer:      cfg.JWT.Issuer,
	}, cfg.Auth.BcryptCost)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, itemRepo, txRunner)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, txRunner)
	shareUC := usecase.NewShareUseCase(quoteRepo, itemRepo, shareRepo, cfg.App.URL)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.BcryptCost)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SM Cotações API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		QuoteUC:     quoteUC,
		CatalogUC:   catalogUC,
		ShareUC:     shareUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
		SessionDays: cfg.JWT.SessionDays,
		ServiceName: cfg.App.Name,
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
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
