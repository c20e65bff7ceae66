package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ibdesk/internal/backoffice"
	"ibdesk/internal/config"
	"ibdesk/internal/middleware"
	"ibdesk/internal/mutate"
	"ibdesk/internal/service"
)

type Handler struct {
	Router chi.Router

	users  *service.UserService
	audit  *service.AuditService
	bo     *backoffice.Client
	coord  *mutate.Coordinator
	logger *zap.SugaredLogger
	config *config.Config
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	auditService *service.AuditService,
	boClient *backoffice.Client,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	h := &Handler{
		users:  userService,
		audit:  auditService,
		bo:     boClient,
		coord:  mutate.New(cfg.SettleDelay, logger),
		logger: logger,
		config: cfg,
	}

	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithSession(cfg.AuthSecret))

	// Service endpoints
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Auth
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	// Protected shell
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		})
		r.Get("/dashboard", h.Dashboard)

		r.Get("/customers", h.CustomersPage)
		r.Post("/customers/save", h.CustomerSave)
		r.Post("/customers/delete", h.CustomerDelete)

		r.Get("/ib-master", h.IBMasterPage)
		r.Post("/ib-master/save", h.IBMasterSave)
		r.Post("/ib-master/delete", h.IBMasterDelete)

		r.Get("/deposit-reports", h.DepositsPage)
		r.Post("/deposit-reports/save", h.DepositSave)
		r.Get("/deposit-reports/export", h.DepositsExportCSV)
	})

	h.Router = r
	return h
}
