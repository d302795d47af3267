package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "resume-builder-backend/lib/utils/app-errors"
	apimodels "resume-builder-backend/models/api"
)

func newTestApp(production bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(production),
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return apperrors.NewValidation("Missing required fields: jobRole")
	})
	app.Get("/upstream", func(c *fiber.Ctx) error {
		return apperrors.NewUpstream(0, "Failed to generate content with Gemini", errors.New("dial tcp: refused"))
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("db password is hunter2")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	app.Use(NotFound())
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, apimodels.Response) {
	t.Helper()
	resp, err := app.Test(req)
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	var parsed apimodels.Response
	if len(body) != 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.Nil(t, json.Unmarshal(body, &parsed))
	}
	return resp, parsed
}

func TestErrorHandler(t *testing.T) {
	t.Run(`app error status and message`, func(t *testing.T) {
		resp, body := doRequest(t, newTestApp(false), httptest.NewRequest(http.MethodGet, "/validation", nil))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, apimodels.StatusFail, body.Status)
		require.Equal(t, "Missing required fields: jobRole", body.Message)
		require.Empty(t, body.Detail)
	})

	t.Run(`upstream detail only outside production`, func(t *testing.T) {
		resp, body := doRequest(t, newTestApp(false), httptest.NewRequest(http.MethodGet, "/upstream", nil))
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.Equal(t, "Failed to generate content with Gemini", body.Message)
		require.Contains(t, body.Detail, "dial tcp: refused")

		resp, body = doRequest(t, newTestApp(true), httptest.NewRequest(http.MethodGet, "/upstream", nil))
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.Equal(t, "Failed to generate content with Gemini", body.Message)
		require.Empty(t, body.Detail)
	})

	t.Run(`unclassified error hidden in production`, func(t *testing.T) {
		resp, body := doRequest(t, newTestApp(true), httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, msgInternalError, body.Message)
		require.Empty(t, body.Detail)

		resp, body = doRequest(t, newTestApp(false), httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, "db password is hunter2", body.Message)
		require.NotEmpty(t, body.Detail)
	})

	t.Run(`fiber error keeps its code`, func(t *testing.T) {
		resp, _ := doRequest(t, newTestApp(true), httptest.NewRequest(http.MethodGet, "/fiber", nil))
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run(`unknown route is 404 json`, func(t *testing.T) {
		resp, body := doRequest(t, newTestApp(true), httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Not Found - /api/unknown", body.Message)
	})
}

func TestCors(t *testing.T) {
	newCorsApp := func(allowed []string) *fiber.App {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(true)})
		app.Use(CorsOriginGuard(allowed))
		app.Use(Cors(allowed))
		app.Get("/ok", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
		return app
	}

	t.Run(`disallowed origin rejected`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://evil.example.com")
		resp, body := doRequest(t, newCorsApp([]string{"https://app.example.com"}), req)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Not allowed by CORS", body.Message)
	})

	t.Run(`allowed origin echoed with credentials`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://app.example.com")
		resp, _ := doRequest(t, newCorsApp([]string{"https://app.example.com"}), req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "https://app.example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		require.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
	})

	t.Run(`request without origin passes`, func(t *testing.T) {
		resp, _ := doRequest(t, newCorsApp([]string{"https://app.example.com"}), httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run(`empty allow-list allows any origin`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://anything.example.com")
		resp, _ := doRequest(t, newCorsApp(nil), req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(true)})
	app.Use(WithBodyLimit(16))
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.Send(c.Body())
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":"b"}`))
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"jobRole":"Backend Engineer"}`))
	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	require.Equal(t, "Request body too large. Maximum allowed: 16 bytes", body.Message)
}

func TestErrNotify(t *testing.T) {
	received := make(chan string, 1)
	notifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
	}))
	defer notifyServer.Close()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(true)})
	app.Use(ErrNotify(notifyServer.URL))
	app.Get("/upstream", func(c *fiber.Ctx) error {
		return apperrors.NewUpstream(503, "The model is overloaded", nil)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return apperrors.NewValidation("bad")
	})

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/upstream", nil))
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	select {
	case payload := <-received:
		require.JSONEq(t, `{"code":503,"method":"GET","path":"/upstream","error":"The model is overloaded"}`, payload)
	case <-time.After(5 * time.Second):
		t.Fatal("error notification was not sent")
	}
	select {
	case payload := <-received:
		t.Fatalf("unexpected notification %s", payload)
	default:
	}
}
