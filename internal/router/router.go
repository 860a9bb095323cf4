// Package router wires the HTTP surface: public auth and record routes, the
// token-protected user lookup, and the metrics endpoint.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contas/internal/auth"
	"contas/internal/config"
	"contas/internal/files"
	"contas/internal/middleware"
	"contas/internal/service"
	"contas/internal/storage"
)

// Build constructs the full request handler from configuration and the
// already-opened store and upload storage.
func Build(cfg *config.Config, store storage.Store, uploads *files.Storage, logger *slog.Logger) http.Handler {
	tokens := auth.NewTokenManager(cfg.Secret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, tokens, store, uploads, logger)
	recordSvc := service.NewRecordService(store, logger)
	imageSvc := service.NewImageService(uploads, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	r.Get("/", welcome)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/download/image", imageSvc.Download)

	r.Post("/auth/register/user", authSvc.Register)
	r.Post("/auth/login", authSvc.Login)

	r.Post("/auth/debts", recordSvc.SubmitDebt)
	r.Post("/auth/revenues", recordSvc.SubmitRevenue)
	r.Get("/list/debts", recordSvc.ListDebts)
	r.Get("/list/revenues", recordSvc.ListRevenues)
	r.Put("/update/debts/{id}", recordSvc.UpdateDebt)
	r.Put("/update/revenues/{id}", recordSvc.UpdateRevenue)
	r.Delete("/delete/debt/{id}", recordSvc.DeleteDebt)
	r.Delete("/delete/revenue/{id}", recordSvc.DeleteRevenue)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth(tokens))
		protected.Get("/user/{id}", authSvc.GetUser)
	})

	return r
}

func welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Bem vindo a nossa API!"}`))
}
