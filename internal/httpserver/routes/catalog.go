package routes

import (
	"github.com/go-chi/chi/v5"

	"biofinder/internal/httpserver/deps"
	"biofinder/internal/httpserver/handlers"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Get("/api/catalog", handlers.CatalogStats(d))
}
