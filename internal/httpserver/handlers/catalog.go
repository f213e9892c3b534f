package handlers

import (
	"net/http"
	"time"

	"biofinder/internal/catalog"
	"biofinder/internal/domain"
	"biofinder/internal/httpserver/deps"
)

type catalogResponse struct {
	Tools      int                      `json:"tools"`
	Containers int                      `json:"containers"`
	Keys       int                      `json:"keys"`
	BuiltAt    time.Time                `json:"built_at"`
	Cache      domain.CacheInfo         `json:"cache"`
	Collisions []catalog.AliasCollision `json:"collisions,omitempty"`
}

// CatalogStats reports the shape and provenance of the current snapshot.
func CatalogStats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.Catalog.Load()
		writeJSON(w, http.StatusOK, catalogResponse{
			Tools:      cat.ToolCount(),
			Containers: cat.ContainerCount(),
			Keys:       cat.KeyCount(),
			BuiltAt:    cat.BuiltAt(),
			Cache:      cat.CacheInfo(),
			Collisions: cat.Collisions(),
		})
	}
}
