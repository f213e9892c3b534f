package routes

import (
	"github.com/go-chi/chi/v5"

	"biofinder/internal/httpserver/deps"
	"biofinder/internal/httpserver/handlers"
)

func init() { Register(registerTools) }

func registerTools(r chi.Router, d deps.Deps) {
	r.Get("/api/tools", handlers.ListTools(d))
	r.Get("/api/tools/{name}", handlers.GetTool(d))
	r.Get("/api/tools/{name}/versions", handlers.GetVersions(d))
}
