package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/http/handlers"
	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Incidents      *handlers.RecordsHandler
	Projects       *handlers.RecordsHandler
	Users          *handlers.UsersHandler
	Knowledge      *handlers.KnowledgeHandler
	Assistant      *handlers.AssistantHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/me", cfg.Auth.Me)

	protected.Get("/users", cfg.Users.List)
	protected.Get("/users/:name", cfg.Users.Get)
	protected.Get("/knowledge", cfg.Knowledge.Search)
	protected.Post("/assistant/messages", cfg.Assistant.Message)

	registerRecordRoutes(protected, "/incidents", cfg.Incidents)
	registerRecordRoutes(protected, "/projects", cfg.Projects)
}

func registerRecordRoutes(parent fiber.Router, prefix string, handler *handlers.RecordsHandler) {
	records := parent.Group(prefix)
	records.Get("", handler.List)
	records.Post("", handler.Create)
	records.Get("/:id", handler.Get)

	// Working a record is reserved for attendants and developers.
	elevated := records.Group("", auth.RequireRole(domain.RoleAtendente, domain.RoleDesenvolvedor))
	elevated.Patch("/:id", handler.Update)
	elevated.Post("/:id/claim", handler.Claim)
	elevated.Post("/:id/save", handler.Save)
	elevated.Post("/:id/finalize", handler.Finalize)
	elevated.Post("/:id/cancel", handler.Cancel)
	elevated.Post("/:id/treatments", handler.AddTreatment)
}
