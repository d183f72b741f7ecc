package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billforge/billforge-api/internal/application/billing"
)

// newAppWithMiddleware mirrors the server wiring: CORS and request
// logging in front of the invoice routes.
func newAppWithMiddleware(t *testing.T, log zerolog.Logger) *fiber.App {
	t.Helper()
	repo := newFakeRepo()
	invoiceUC := billing.NewInvoiceUseCase(&fakeTxRunner{repo: repo}, repo)
	documentUC := billing.NewDocumentUseCase(repo, fakeRenderer{}, fakePDF{}, &fakeMailer{})

	app := fiber.New()
	app.Use(cors.New())
	app.Use(RequestLogger(log))
	Router(app, RouterDeps{InvoiceUC: invoiceUC, DocumentUC: documentUC})
	return app
}

func TestCORS_PreflightFromBrowserOrigin(t *testing.T) {
	app := newAppWithMiddleware(t, zerolog.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/invoices", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestCORS_SimpleRequestCarriesAllowOrigin(t *testing.T) {
	app := newAppWithMiddleware(t, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestRequestLogger_LogsMethodPathAndStatus(t *testing.T) {
	var buf bytes.Buffer
	app := newAppWithMiddleware(t, zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/api/invoices"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestRequestLogger_ClientErrorLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	app := newAppWithMiddleware(t, zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/INV-9999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"warn"`)
}
