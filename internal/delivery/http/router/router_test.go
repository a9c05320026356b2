package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/config"
	"musea/internal/delivery/http/middleware"
	"musea/internal/delivery/http/response"
	"musea/internal/delivery/http/router/handler"
	"musea/internal/delivery/http/validator"
	"musea/internal/infra/auth"
	"musea/internal/infra/chatbot"
	"musea/internal/infra/metrics"
	"musea/internal/infra/persistence/memory"
	"musea/internal/infra/qrcode"
	"musea/internal/infra/session"
	"musea/internal/usecase/impl"
)

// newTestServer wires the full HTTP stack against a seeded in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	require.NoError(t, store.InitializeData(context.Background()))

	m := metrics.New()
	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	sessions := session.NewMemoryStore()
	qrcodeSvc := qrcode.NewQRCodeService(cfg)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     store,
		Hasher:       hasher,
		TokenService: tokenSvc,
		SessionStore: sessions,
		Metrics:      m,
		Logger:       logger,
	})
	exhibitionUC := impl.NewExhibitionService(impl.ExhibitionServiceParams{ExhibitionRepo: store})
	ticketTypeUC := impl.NewTicketTypeService(impl.TicketTypeServiceParams{TicketTypeRepo: store})
	ticketUC := impl.NewTicketService(impl.TicketServiceParams{
		TicketRepo:     store,
		TicketTypeRepo: store,
		ExhibitionRepo: store,
		QRCodeService:  qrcodeSvc,
		Metrics:        m,
		Logger:         logger,
	})
	chatUC := impl.NewChatService(impl.ChatServiceParams{
		ConversationRepo: store,
		Responder:        chatbot.NewResponder(),
		Metrics:          m,
	})
	testimonialUC := impl.NewTestimonialService(impl.TestimonialServiceParams{TestimonialRepo: store})
	analyticsUC := impl.NewAnalyticsService(impl.AnalyticsServiceParams{AnalyticsRepo: store})

	authMw := middleware.NewAuthMiddleware(tokenSvc)
	errorMw := middleware.NewErrorMiddleware(logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorMw.HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(authUC, logger),
		ExhibitionHandler:   handler.NewExhibitionHandler(exhibitionUC, logger),
		TicketTypeHandler:   handler.NewTicketTypeHandler(ticketTypeUC, logger),
		TicketHandler:       handler.NewTicketHandler(ticketUC, logger),
		ChatHandler:         handler.NewChatHandler(chatUC, logger),
		TestimonialHandler:  handler.NewTestimonialHandler(testimonialUC, logger),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsUC, logger),
		AuthMiddleware:      authMw,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		Metrics:             m,
	}).RegisterRoutes(e)

	return e
}

// doJSON performs a request against the test server and decodes the envelope.
func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

// registerVisitor creates a fresh account and returns its access token.
func registerVisitor(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"password": "secret123",
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope.Data.(map[string]any)

	return data["accessToken"].(string)
}

// loginAdmin signs in with the seeded administrator account.
func loginAdmin(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := envelope.Data.(map[string]any)

	return data["accessToken"].(string)
}

// purchaseTicket buys one seeded general admission ticket and returns its ID.
func purchaseTicket(t *testing.T, e *echo.Echo, token string) int64 {
	t.Helper()

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/tickets", token, map[string]any{
		"ticketTypeId": 1,
		"quantity":     2,
		"visitDate":    "2030-05-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope.Data.(map[string]any)

	return int64(data["id"].(float64))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_FeaturedExhibitions(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/exhibitions/featured", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Contains(t, rec.Body.String(), "Ancient Egypt")
}

func TestRouter_RegisterDuplicateUsername(t *testing.T) {
	e := newTestServer(t)

	registerVisitor(t, e, "alice")

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"password": "secret123",
		"email":    "alice2@example.com",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "USERNAME_TAKEN", envelope.Error.Code)
}

func TestRouter_MeRequiresToken(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := registerVisitor(t, e, "bob")
	rec, envelope := doJSON(t, e, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", envelope.Data.(map[string]any)["username"])
}

func TestRouter_ForeignTicketIsForbidden(t *testing.T) {
	e := newTestServer(t)

	owner := registerVisitor(t, e, "owner")
	stranger := registerVisitor(t, e, "stranger")
	ticketID := purchaseTicket(t, e, owner)

	rec, envelope := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/tickets/%d", ticketID), stranger, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_TICKET_OWNER", envelope.Error.Code)
}

func TestRouter_PaymentReplayFails(t *testing.T) {
	e := newTestServer(t)

	token := registerVisitor(t, e, "payer")
	ticketID := purchaseTicket(t, e, token)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/payments/process", token, map[string]any{
		"ticketId": ticketID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, true, data["isPaid"])
	assert.Contains(t, data["qrCodeData"], "data:image/png;base64,")

	rec, envelope = doJSON(t, e, http.MethodPost, "/api/payments/process", token, map[string]any{
		"ticketId": ticketID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TICKET_ALREADY_PAID", envelope.Error.Code)
}

func TestRouter_UseTicketIsAdminOnly(t *testing.T) {
	e := newTestServer(t)

	visitor := registerVisitor(t, e, "entrant")
	admin := loginAdmin(t, e)
	ticketID := purchaseTicket(t, e, visitor)

	_, _ = doJSON(t, e, http.MethodPost, "/api/payments/process", visitor, map[string]any{
		"ticketId": ticketID,
	})

	rec, _ := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/tickets/%d/use", ticketID), visitor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, envelope := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/tickets/%d/use", ticketID), admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, envelope.Data.(map[string]any)["isUsed"])
}

func TestRouter_ExhibitionWritesRequireAdmin(t *testing.T) {
	e := newTestServer(t)

	body := map[string]any{
		"title":       "Islands of Glass",
		"description": "Venetian glasswork from five centuries.",
		"startDate":   "2026-01-10",
		"endDate":     "2026-04-10",
		"isFeatured":  true,
	}

	rec, _ := doJSON(t, e, http.MethodPost, "/api/exhibitions", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	visitor := registerVisitor(t, e, "curieuse")
	rec, _ = doJSON(t, e, http.MethodPost, "/api/exhibitions", visitor, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := loginAdmin(t, e)
	rec, envelope := doJSON(t, e, http.MethodPost, "/api/exhibitions", admin, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Islands of Glass", envelope.Data.(map[string]any)["title"])
}

func TestRouter_ChatFlow(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/chat/start", "", map[string]any{
		"language": "en",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope.Data.(map[string]any)
	conversation := data["conversation"].(map[string]any)
	conversationID := int64(conversation["id"].(float64))
	messages := data["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].(map[string]any)["content"], "museum booking assistant")

	rec, envelope = doJSON(t, e, http.MethodPost, "/api/chat/message", "", map[string]any{
		"conversationId": conversationID,
		"message":        "What are your opening hours?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	messages = envelope.Data.(map[string]any)["messages"].([]any)
	require.Len(t, messages, 3)
	assert.Contains(t, messages[2].(map[string]any)["content"], "closed on Mondays")
}

func TestRouter_TestimonialModeration(t *testing.T) {
	e := newTestServer(t)

	visitor := registerVisitor(t, e, "reviewer")
	rec, envelope := doJSON(t, e, http.MethodPost, "/api/testimonials", visitor, map[string]any{
		"name":    "Nina P.",
		"content": "A wonderful afternoon, the Egypt wing is stunning.",
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	testimonialID := int64(envelope.Data.(map[string]any)["id"].(float64))

	// Pending submissions stay off the public list.
	_, envelope = doJSON(t, e, http.MethodGet, "/api/testimonials", "", nil)
	assert.NotContains(t, fmt.Sprintf("%v", envelope.Data), "Nina P.")

	admin := loginAdmin(t, e)
	rec, _ = doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/testimonials/%d/approve", testimonialID), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, envelope = doJSON(t, e, http.MethodGet, "/api/testimonials", "", nil)
	assert.Contains(t, fmt.Sprintf("%v", envelope.Data), "Nina P.")
}

func TestRouter_AnalyticsIsAdminOnly(t *testing.T) {
	e := newTestServer(t)

	visitor := registerVisitor(t, e, "snoop")
	rec, _ := doJSON(t, e, http.MethodGet, "/api/analytics", visitor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := loginAdmin(t, e)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/analytics", admin, map[string]any{
		"date":         "2026-08-30",
		"visitorCount": 412,
		"revenue":      7380.50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/analytics", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, fmt.Sprintf("%v", envelope.Data), "412")
}

func TestRouter_ValidationErrorEnvelope(t *testing.T) {
	e := newTestServer(t)

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "x",
		"password": "short",
		"email":    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.NotEmpty(t, envelope.Error.Details)
}
