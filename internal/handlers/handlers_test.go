package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ibdesk/internal/backoffice"
	"ibdesk/internal/config"
	"ibdesk/internal/handlers"
	"ibdesk/internal/model"
	"ibdesk/internal/repo"
	"ibdesk/internal/service"
)

// respondEnvelope пишет конверт {ResponseCode, Response, Message}.
func respondEnvelope(t *testing.T, w http.ResponseWriter, code int, response any, message string) {
	t.Helper()
	env := map[string]any{"ResponseCode": code, "Message": message}
	if response != nil {
		env["Response"] = response
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

// newTestHandler поднимает хендлер с реальными сервисами над временным
// sqlite и фейковым back-office API.
func newTestHandler(t *testing.T, upstream http.Handler) *handlers.Handler {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ListenAddr:     "localhost:8080",
		AuthSecret:     "test-secret",
		UserDBPath:     filepath.Join(t.TempDir(), "users.db"),
		APIBaseURL:     srv.URL,
		RequestTimeout: 2 * time.Second,
		SettleDelay:    0,
		PageSize:       10,
	}

	db, err := repo.InitDB("", cfg.UserDBPath)
	require.NoError(t, err)

	userService := service.NewUserService(repo.NewUserRepository(db))
	require.NoError(t, userService.Seed(context.Background(), service.DefaultSeedUsers))

	logger := zap.NewNop().Sugar()
	auditService := service.NewAuditService(repo.NewAuditRepository(db), logger)
	boClient := backoffice.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)

	return handlers.NewHandler(userService, auditService, boClient, logger, cfg)
}

// login возвращает cookie успешно вошедшего оператора.
func login(t *testing.T, h *handlers.Handler) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {"test@gmail.com"}, "password": {"123456"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	return rec.Result().Cookies()
}

func get(h *handlers.Handler, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)
	return rec
}

func postForm(h *handlers.Handler, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, http.NotFoundHandler())
	rec := get(h, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFlow(t *testing.T) {
	h := newTestHandler(t, http.NotFoundHandler())

	t.Run("login page renders form", func(t *testing.T) {
		rec := get(h, "/login", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/login")
	})

	t.Run("empty fields", func(t *testing.T) {
		rec := postForm(h, "/login", url.Values{"email": {"test@gmail.com"}}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fill all the fields")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		form := url.Values{"email": {"test@gmail.com"}, "password": {"wrong"}}
		rec := postForm(h, "/login", form, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid Credentials")
	})

	t.Run("success sets session and redirects", func(t *testing.T) {
		cookies := login(t, h)
		var hasSession, hasWelcome bool
		for _, c := range cookies {
			switch c.Name {
			case "ibdesk_session":
				hasSession = c.Value != ""
			case "ibdesk_welcome":
				hasWelcome = c.Value != ""
			}
		}
		assert.True(t, hasSession)
		assert.True(t, hasWelcome)
	})
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	h := newTestHandler(t, http.NotFoundHandler())
	for _, target := range []string{"/", "/dashboard", "/customers", "/ib-master", "/deposit-reports"} {
		rec := get(h, target, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, target)
		assert.Equal(t, "/login", rec.Result().Header.Get("Location"), target)
	}
}

func TestDashboard_WelcomeOnce(t *testing.T) {
	h := newTestHandler(t, http.NotFoundHandler())
	cookies := login(t, h)

	rec := get(h, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back!")
	assert.Contains(t, rec.Body.String(), "test@gmail.com")

	// welcome-флаг погашен; повторный заход без тоста
	var next []*http.Cookie
	for _, c := range cookies {
		if c.Name != "ibdesk_welcome" {
			next = append(next, c)
		}
	}
	rec = get(h, "/dashboard", next)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Welcome back!")
}

func makeCustomers(n int) []model.Customer {
	list := make([]model.Customer, n)
	for i := range list {
		list[i] = model.Customer{
			Id:         int64(i + 1),
			ClientId:   int64(100 + i),
			ClientName: "Client" + string(rune('A'+i)),
			Email:      "c@x.y",
			IbId:       7,
		}
	}
	return list
}

func TestCustomersPage_ListAndPaging(t *testing.T) {
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/getCustomer", r.URL.Path)
		respondEnvelope(t, w, 200, makeCustomers(12), "")
	}))
	cookies := login(t, h)

	rec := get(h, "/customers", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ClientA")
	assert.Contains(t, body, "Page 1 of 2")
	// вторая страница за пределами первых десяти строк
	assert.NotContains(t, body, "ClientK")

	rec = get(h, "/customers?page=1", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ClientK")
}

func TestCustomersPage_NotFoundIsEmptyState(t *testing.T) {
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/getCustomerByCustomerId", r.URL.Path)
		// зеро-сентинел: код 200, объект с нулевым ключом
		respondEnvelope(t, w, 200, model.Customer{}, "")
	}))
	cookies := login(t, h)

	rec := get(h, "/customers?clientId=999", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No customer records found")
}

func TestCustomerSave_ValidationRedirects(t *testing.T) {
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected on validation failure")
	}))
	cookies := login(t, h)

	form := url.Values{
		"clientId":     {"101"},
		"customerName": {"Alice"},
		// email не заполнен
		"ibId": {"7"},
	}
	rec := postForm(h, "/customers/save", form, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Result().Header.Get("Location")
	assert.Contains(t, loc, "/customers?err=")
	assert.Contains(t, loc, url.QueryEscape("Email is required"))
}

func TestCustomerSave_Success(t *testing.T) {
	var saved map[string]any
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/createOrUpdateClient", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		respondEnvelope(t, w, 200, nil, "")
	}))
	cookies := login(t, h)

	form := url.Values{
		"clientId":     {"101"},
		"customerName": {"Alice"},
		"email":        {"alice@x.y"},
		"ibId":         {"7"},
	}
	rec := postForm(h, "/customers/save", form, cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers", rec.Result().Header.Get("Location"))
	assert.Equal(t, "Alice", saved["CustomerName"])
}

func TestCustomerDelete_OptimisticRemoval(t *testing.T) {
	deleted := false
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/auth/deleteCustomer/100", r.URL.Path)
			deleted = true
			respondEnvelope(t, w, 200, nil, "")
		default:
			respondEnvelope(t, w, 200, makeCustomers(3), "")
		}
	}))
	cookies := login(t, h)

	form := url.Values{"clientId": {"100"}}
	rec := postForm(h, "/customers/delete", form, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deleted)
	// удалённая строка исчезла из выдачи без повторной выборки
	body := rec.Body.String()
	assert.NotContains(t, body, "ClientA")
	assert.Contains(t, body, "ClientB")
}

func TestDepositsPage_NoSearchNoFetch(t *testing.T) {
	calls := 0
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// допустимы только справочники формы
		switch r.URL.Path {
		case "/master/getPaymentMethod":
			respondEnvelope(t, w, 200, []model.PaymentMethod{{Id: 1, PaymentMethod: "Wire"}}, "")
		case "/master/getCurrencyType":
			respondEnvelope(t, w, 200, []model.CurrencyType{{Id: 1, CurrencyType: "USD"}}, "")
		default:
			calls++
			respondEnvelope(t, w, 200, []model.Deposit{}, "")
		}
	}))
	cookies := login(t, h)

	rec := get(h, "/deposit-reports", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, calls)
	assert.Contains(t, rec.Body.String(), "Enter search criteria")
}

func TestDepositsExportCSV(t *testing.T) {
	date := "01/15/2024"
	method := "Wire"
	h := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deposit/getDepositByDepositId", r.URL.Path)
		respondEnvelope(t, w, 200, model.Deposit{
			Id: 5, ClientId: 101, Amount: 250.5, Date: &date, PaymentMethod: &method,
		}, "")
	}))
	cookies := login(t, h)

	rec := get(h, "/deposit-reports/export?depositId=5", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Result().Header.Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Deposit ID")
	assert.Contains(t, body, "250.50")
	assert.Contains(t, body, "Wire")
}
