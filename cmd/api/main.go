package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/grancoffee/helpdesk-service/internal/api/http"
	"github.com/grancoffee/helpdesk-service/internal/api/http/handlers"
	"github.com/grancoffee/helpdesk-service/internal/assistant"
	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/config"
	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/events"
	"github.com/grancoffee/helpdesk-service/internal/observability"
	"github.com/grancoffee/helpdesk-service/internal/repository"
	"github.com/grancoffee/helpdesk-service/internal/seed"
	"github.com/grancoffee/helpdesk-service/internal/service"
	"github.com/grancoffee/helpdesk-service/internal/session"
	"github.com/grancoffee/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	incidentRepo := repository.NewMemoryRecordRepository(seed.Incidents())
	projectRepo := repository.NewMemoryRecordRepository(nil)
	userDirectory := repository.NewMemoryUserDirectory(seed.Users())
	knowledgeRepo := repository.NewMemoryKnowledgeRepository(seed.KnowledgeArticles())

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	sessions := newSessionStore(cfg, logger)

	credentials, err := auth.NewCredentialTable(cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to build credential table", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	authService := service.NewAuthService(service.AuthDependencies{
		Credentials: credentials,
		Tokens:      tokens,
		Sessions:    sessions,
	})
	incidentService := service.NewRecordService(domain.KindIncident, service.RecordDependencies{
		RecordRepo: incidentRepo,
		Dispatcher: dispatcher,
	})
	projectService := service.NewRecordService(domain.KindProject, service.RecordDependencies{
		RecordRepo: projectRepo,
		Dispatcher: dispatcher,
	})
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	responder := assistant.NewScriptedResponder(knowledgeService)

	validate := validator.New()
	authMiddleware := auth.NewAuthMiddleware(tokens, sessions)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions),
		Auth:           handlers.NewAuthHandler(authService, validate),
		Incidents:      handlers.NewRecordsHandler(incidentService, validate),
		Projects:       handlers.NewRecordsHandler(projectService, validate),
		Users:          handlers.NewUsersHandler(userDirectory),
		Knowledge:      handlers.NewKnowledgeHandler(knowledgeService),
		Assistant:      handlers.NewAssistantHandler(responder, validate),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) session.Store {
	if strings.EqualFold(cfg.Session.Backend, "redis") {
		client := session.NewRedisClient(cfg.Redis, logger)
		return session.NewRedisStore(client)
	}
	return session.NewMemoryStore()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
