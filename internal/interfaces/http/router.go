package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/smcotacoes/cotacoes-api/internal/application/auth"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	QuoteUC     *usecase.QuoteUseCase
	CatalogUC   *usecase.CatalogUseCase
	ShareUC     *usecase.ShareUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
	SessionDays int
	ServiceName string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware(deps.ServiceName))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionDays)

	// Login (público, com limite por IP contra força bruta)
	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "muitas tentativas, aguarde um minuto"})
		},
	})
	api.Post("/login", loginLimiter, authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	// Resolução de share (público; o token é a credencial)
	shareHandler := NewShareHandler(deps.ShareUC)
	api.Get("/shares/:token", shareHandler.Resolve)

	// Rotas protegidas (cookie de sessão ou Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)
	protected.Patch("/profile/password", authHandler.ChangePassword)

	// Quotes (protegido)
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes := protected.Group("/quotes")
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:id", quoteHandler.Get)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Patch("/:id/finalize", quoteHandler.Finalize)
	quotes.Post("/:id/items", quoteHandler.AddItem)

	// Items (protegido; a posse vem da cotação pai)
	items := protected.Group("/items")
	items.Patch("/:id", quoteHandler.UpdateItem)
	items.Delete("/:id", quoteHandler.DeleteItem)

	// Catalog autofill e criação de share (protegido, qualquer papel)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog/:barcode", catalogHandler.Lookup)
	protected.Post("/shares", shareHandler.Create)

	// Administração (protegido, papel admin)
	admin := protected.Group("/admin", RequireRole("admin"))

	adminCatalog := admin.Group("/catalog")
	adminCatalog.Get("/", catalogHandler.AdminList)
	adminCatalog.Get("/export", catalogHandler.Export)
	adminCatalog.Post("/import", catalogHandler.Import)
	adminCatalog.Patch("/:id", catalogHandler.AdminUpdate)

	userHandler := NewUserHandler(deps.UserUC)
	adminUsers := admin.Group("/users")
	adminUsers.Get("/", userHandler.List)
	adminUsers.Post("/", userHandler.Create)
	adminUsers.Patch("/:id", userHandler.Update)
	adminUsers.Patch("/:id/toggle", userHandler.ToggleActive)
	adminUsers.Post("/:id/reset", userHandler.ResetPassword)
}
