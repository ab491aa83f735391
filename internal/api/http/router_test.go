package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/grancoffee/helpdesk-service/internal/api/http/handlers"
	"github.com/grancoffee/helpdesk-service/internal/assistant"
	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/events"
	"github.com/grancoffee/helpdesk-service/internal/observability"
	"github.com/grancoffee/helpdesk-service/internal/repository"
	"github.com/grancoffee/helpdesk-service/internal/seed"
	"github.com/grancoffee/helpdesk-service/internal/service"
	"github.com/grancoffee/helpdesk-service/internal/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	incidentRepo := repository.NewMemoryRecordRepository(seed.Incidents())
	projectRepo := repository.NewMemoryRecordRepository(nil)
	userDirectory := repository.NewMemoryUserDirectory(seed.Users())
	knowledgeRepo := repository.NewMemoryKnowledgeRepository(seed.KnowledgeArticles())

	dispatcher := events.NewInMemoryDispatcher()
	sessions := session.NewMemoryStore()
	credentials, err := auth.NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("credential table: %v", err)
	}
	tokens := auth.NewTokenManager("test-secret", time.Hour)

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
	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("helpdesk-service", "test", sessions),
		Auth:           handlers.NewAuthHandler(authService, validate),
		Incidents:      handlers.NewRecordsHandler(incidentService, validate),
		Projects:       handlers.NewRecordsHandler(projectService, validate),
		Users:          handlers.NewUsersHandler(userDirectory),
		Knowledge:      handlers.NewKnowledgeHandler(knowledgeService),
		Assistant:      handlers.NewAssistantHandler(responder, validate),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, sessions),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func dataObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object: %v", body)
	}
	return data
}

func loginAs(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	data := dataObject(t, resp)
	authPart, ok := data["auth"].(map[string]any)
	if !ok {
		t.Fatalf("missing auth payload: %v", data)
	}
	token, _ := authPart["token"].(string)
	if token == "" {
		t.Fatalf("empty token for %s", username)
	}
	return token
}

func TestLoginAndMe(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodGet, "/auth/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	if data["name"] != "João Silva" || data["role"] != "colaborador" {
		t.Fatalf("wrong identity: %v", data)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", map[string]string{
		"username": "colaborador",
		"password": "errada",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error envelope: %v", body)
	}
	if errObj["message"] != "Credenciais inválidas. Verifique seu usuário e senha." {
		t.Fatalf("wrong message: %v", errObj["message"])
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, fiber.MethodGet, "/incidents", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodPost, "/auth/logout", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/auth/me", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestCreateIncidentAppliesDefaults(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodPost, "/incidents", token, map[string]any{
		"description": "Teste",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	if data["status"] != "Pendente" {
		t.Fatalf("expected Pendente, got %v", data["status"])
	}
	if data["priority"] != "Média" {
		t.Fatalf("expected Média, got %v", data["priority"])
	}
	if data["assigned_to"] != "Não Atribuído" {
		t.Fatalf("expected unassigned, got %v", data["assigned_to"])
	}
	if data["requested_for"] != "João Silva" || data["opened_by"] != "João Silva" {
		t.Fatalf("wrong requester attribution: %v", data)
	}
	number, _ := data["number"].(string)
	if !strings.HasPrefix(number, "INC") {
		t.Fatalf("bad number: %v", data["number"])
	}
}

func TestCreateIncidentRequiresDescription(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodPost, "/incidents", token, map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateProjectRequiresRequester(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "desenvolvedor", "dev123")

	resp := doJSON(t, app, fiber.MethodPost, "/projects", token, map[string]any{
		"description": "Nova automação",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without requested_for, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPost, "/projects", token, map[string]any{
		"description":   "Nova automação",
		"requested_for": "Maria Oliveira",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create project: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	number, _ := data["number"].(string)
	if !strings.HasPrefix(number, "PRJ") {
		t.Fatalf("bad project number: %v", data["number"])
	}
}

func TestClaimFlow(t *testing.T) {
	app := newTestApp(t)
	collaborator := loginAs(t, app, "colaborador", "senha123")
	attendant := loginAs(t, app, "atendente", "suporte")
	developer := loginAs(t, app, "desenvolvedor", "dev123")

	resp := doJSON(t, app, fiber.MethodPost, "/incidents", collaborator, map[string]any{
		"description": "Teste de fila",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	id, _ := dataObject(t, resp)["id"].(string)
	if id == "" {
		t.Fatalf("missing record id")
	}

	resp = doJSON(t, app, fiber.MethodPost, "/incidents/"+id+"/claim", attendant, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("claim: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	if data["assigned_to"] != "Lucas Matias Ferreira" || data["status"] != "Em Andamento" {
		t.Fatalf("claim did not assign: %v", data)
	}

	// A second claim silently reassigns.
	resp = doJSON(t, app, fiber.MethodPost, "/incidents/"+id+"/claim", developer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reclaim: status %d", resp.StatusCode)
	}
	data = dataObject(t, resp)
	if data["assigned_to"] != "Carlos Souza" {
		t.Fatalf("reclaim did not reassign: %v", data)
	}
}

func TestCollaboratorCannotClaim(t *testing.T) {
	app := newTestApp(t)
	collaborator := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodPost, "/incidents/2/claim", collaborator, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestFinalizeFlow(t *testing.T) {
	app := newTestApp(t)
	collaborator := loginAs(t, app, "colaborador", "senha123")
	attendant := loginAs(t, app, "atendente", "suporte")

	resp := doJSON(t, app, fiber.MethodPost, "/incidents", collaborator, map[string]any{
		"description": "Monitor piscando",
	})
	id, _ := dataObject(t, resp)["id"].(string)

	if resp := doJSON(t, app, fiber.MethodPost, "/incidents/"+id+"/claim", attendant, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("claim: status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPost, "/incidents/"+id+"/finalize", attendant, map[string]any{
		"conclusion":    "Cabo de vídeo trocado",
		"timer_seconds": 150,
		"treatments": []map[string]any{
			{"content": "Visita ao posto de trabalho", "is_public": true},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("finalize: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	if data["status"] != "Finalizado" {
		t.Fatalf("expected Finalizado, got %v", data["status"])
	}
	if data["conclusion"] != "Cabo de vídeo trocado" {
		t.Fatalf("conclusion missing: %v", data)
	}
	if minutes, _ := data["timer_minutes"].(float64); minutes != 2 {
		t.Fatalf("expected 2 timer minutes, got %v", data["timer_minutes"])
	}
	treatments, _ := data["treatments"].([]any)
	if len(treatments) != 1 {
		t.Fatalf("expected one treatment, got %d", len(treatments))
	}
}

func TestQueueListing(t *testing.T) {
	app := newTestApp(t)
	attendant := loginAs(t, app, "atendente", "suporte")

	resp := doJSON(t, app, fiber.MethodGet, "/incidents?tab=queue", attendant, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("missing data list: %v", body)
	}
	for _, raw := range items {
		item := raw.(map[string]any)
		if item["status"] != "Pendente" || item["assigned_to"] != "Não Atribuído" {
			t.Fatalf("non-queue record in queue listing: %v", item)
		}
	}
}

func TestKnowledgeSearchEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodGet, "/knowledge?q=impressora", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one article, got %v", body["data"])
	}
	article := items[0].(map[string]any)
	if article["title"] != "Resolver problemas de impressora" {
		t.Fatalf("wrong article: %v", article["title"])
	}
}

func TestAssistantEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodPost, "/assistant/messages", token, map[string]any{
		"message": "preciso de ajuda",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assistant: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	reply, _ := data["reply"].(string)
	if !strings.Contains(reply, "Estou aqui para ajudar!") {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestUserDirectoryListing(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodGet, "/users", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	items, ok := body["data"].([]any)
	if !ok || len(items) != len(seed.Users()) {
		t.Fatalf("expected the full directory, got %v", body["data"])
	}
}

func TestUserLookupHandlesEscapedNames(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "colaborador", "senha123")

	resp := doJSON(t, app, fiber.MethodGet, "/users/Lucas%20Matias%20Ferreira", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lookup: status %d", resp.StatusCode)
	}
	data := dataObject(t, resp)
	if data["name"] != "Lucas Matias Ferreira" {
		t.Fatalf("wrong user: %v", data)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/users/Desconhecido", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/health/live", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("live: status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, fiber.MethodGet, "/health/ready", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ready: status %d", resp.StatusCode)
	}
}
