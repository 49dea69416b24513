/**
 * @description
 * This file sets up the HTTP router for the banking service using the
 * go-chi/chi router. It registers the API routes, the static frontend, and
 * middleware for request ids, logging, panic recovery, timeouts, and the
 * wide-open CORS policy the frontend relies on.
 */
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a Chi router and registers the banking routes.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/", h.Frontend)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/accounts", h.CreateAccount)
		r.Route("/accounts/{accountNumber}", func(r chi.Router) {
			r.Get("/", h.GetAccount)
			r.Post("/deposit", h.Deposit)
			r.Post("/withdraw", h.Withdraw)
			r.Post("/transfer", h.Transfer)
			r.Get("/transactions", h.Transactions)
		})
	})

	return r
}
