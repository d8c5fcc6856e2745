package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"perfume-designer/internal/client"
	"perfume-designer/internal/config"
	"perfume-designer/internal/mocks"
	"perfume-designer/internal/repository"
	"perfume-designer/internal/service"
	"perfume-designer/internal/session"
	"perfume-designer/internal/telemetry"
	"perfume-designer/internal/web"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

type testApp struct {
	handler    http.Handler
	pricing    repository.PricingRepository
	orders     repository.OrderRepository
	generation *mocks.MockGenerationClient
	cookie     *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDBClient(config.Database{Driver: "sqlite", URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	questionRepo := repository.NewQuestionRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	require.NoError(t, questionRepo.SeedDefaults(ctx))

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	generation := new(mocks.MockGenerationClient)
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	srv := NewServer(Deps{
		OrderService: service.NewOrderService(questionRepo, pricingRepo, orderRepo, generation, metrics, zap.NewNop()),
		AdminService: service.NewAdminService(questionRepo, pricingRepo, orderRepo, t.TempDir(), zap.NewNop()),
		Verifier:     service.NewStaticCredentials(config.Admin{Username: "admin", Password: "password"}),
		Sessions:     session.NewStore(config.Session{Secret: "test-secret"}, false),
		Renderer:     renderer,
		Log:          zap.NewNop(),
	})

	return &testApp{
		handler:    srv.Handler(),
		pricing:    pricingRepo,
		orders:     orderRepo,
		generation: generation,
	}
}

// do sends the request with the current session cookie and keeps any
// refreshed cookie for the next call, like a browser would.
func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			a.cookie = c
		}
	}
	return rec
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return a.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return a.do(t, req)
}

func (a *testApp) login(t *testing.T) {
	t.Helper()
	rec := a.postForm(t, "/login", url.Values{"username": {"admin"}, "password": {"password"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodPost, "/admin/upload_questions"},
		{http.MethodPost, "/admin/manage_pricing"},
		{http.MethodPost, "/admin/add_question"},
		{http.MethodPost, "/admin/edit_question/q1"},
		{http.MethodPost, "/admin/delete_question/q1"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			app := newTestApp(t)
			rec := app.do(t, httptest.NewRequest(r.method, r.path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

			page := app.get(t, "/login")
			assert.Contains(t, page.Body.String(), "Please log in first.")
		})
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm(t, "/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, http.StatusFound, app.get(t, "/admin/dashboard").Code)

	app.login(t)
	rec = app.get(t, "/admin/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged in successfully.")

	rec = app.get(t, "/logout")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, http.StatusFound, app.get(t, "/admin/dashboard").Code)
}

func TestManagePricing(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	app.login(t)

	rec := app.postForm(t, "/admin/manage_pricing", url.Values{"size": {"99"}, "price": {"10"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "Invalid bottle size.")

	rec = app.postForm(t, "/admin/manage_pricing", url.Values{"size": {"35"}, "price": {"abc"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "Invalid price.")

	entries, err := app.pricing.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	rec = app.postForm(t, "/admin/manage_pricing", url.Values{"size": {"35"}, "price": {"50.0"}})
	assert.Equal(t, http.StatusFound, rec.Code)

	price, found, err := app.pricing.GetPrice(ctx, "35")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, price.Equal(decimal.NewFromInt(50)))
}

func TestOrderWorkflow(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	require.NoError(t, app.pricing.SetPrice(ctx, "35", decimal.NewFromFloat(50.0)))

	app.generation.On("Generate", mock.Anything, mock.Anything).
		Return(client.SplitDesign("Desc text\n\nFormula text"), nil)

	rec := app.get(t, "/design")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="q3"`)

	rec = app.postForm(t, "/design", url.Values{
		"q1":          {"آرامش‌بخش"},
		"q3":          {"گلی", "چوبی"},
		"q8":          {"rain"},
		"bottle_size": {"35"},
		"gift":        {"on"},
		"note":        {"thanks"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	require.True(t, strings.HasPrefix(location, "/result/"), location)
	orderID := strings.TrimPrefix(location, "/result/")

	order, err := app.orders.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Desc text", order.UserDescription)
	assert.Equal(t, "Formula text", order.AdminFormula)
	assert.Equal(t, "گلی, چوبی", order.Responses.Get("q3"))
	assert.True(t, order.Gift)
	assert.False(t, order.Paid)

	rec = app.get(t, location)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desc text")
	assert.Contains(t, rec.Body.String(), "50.00")
	assert.NotContains(t, rec.Body.String(), "Formula text")

	rec = app.do(t, httptest.NewRequest(http.MethodPost, "/payment/"+orderID, nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/confirmation/"+orderID, rec.Header().Get(echo.HeaderLocation))

	rec = app.get(t, "/confirmation/"+orderID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "is paid")
}

func TestOrderWorkflow_GenerationFailureAndUnpricedSize(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	app.generation.On("Generate", mock.Anything, mock.Anything).
		Return(client.FallbackDesign(), errors.New("generation error 503"))

	rec := app.postForm(t, "/design", url.Values{"bottle_size": {"50"}})
	require.Equal(t, http.StatusFound, rec.Code)

	order, err := app.orders.FindByOrderID(ctx, strings.TrimPrefix(rec.Header().Get(echo.HeaderLocation), "/result/"))
	require.NoError(t, err)
	assert.True(t, order.Price.IsZero())
	assert.Equal(t, "Unable to generate description at the moment.", order.UserDescription)
	assert.Equal(t, "N/A", order.AdminFormula)
}

func TestUnknownOrderRedirectsHome(t *testing.T) {
	app := newTestApp(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/result/bad-id", nil),
		httptest.NewRequest(http.MethodGet, "/confirmation/bad-id", nil),
		httptest.NewRequest(http.MethodPost, "/payment/bad-id", nil),
	} {
		rec := app.do(t, req)
		assert.Equal(t, http.StatusFound, rec.Code, req.URL.Path)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation), req.URL.Path)
	}

	rec := app.get(t, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found.")
}

func TestQuestionAdmin(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	rec := app.postForm(t, "/admin/add_question", url.Values{
		"id": {"q12"}, "text": {"Budget?"}, "type": {"single"}, "options": {"low, high"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	body := app.get(t, "/admin/dashboard").Body.String()
	assert.Contains(t, body, "Question added.")
	assert.Contains(t, body, "Budget?")

	rec = app.postForm(t, "/admin/edit_question/q12", url.Values{
		"text": {"Budget range?"}, "type": {"text"}, "options": {"ignored"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "Budget range?")

	rec = app.postForm(t, "/admin/delete_question/q12", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	body = app.get(t, "/admin/dashboard").Body.String()
	assert.Contains(t, body, "Question deleted.")
	assert.NotContains(t, body, "Budget range?")
}

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload_questions", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadQuestions_Rejects(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	rec := app.postForm(t, "/admin/upload_questions", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "No file selected.")

	rec = app.do(t, multipartUpload(t, "questions.csv", []byte("id,text")))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "Invalid file format.")

	rec = app.do(t, multipartUpload(t, "questions.xlsx", []byte("broken")))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, app.get(t, "/admin/dashboard").Body.String(), "Error processing file:")
}
