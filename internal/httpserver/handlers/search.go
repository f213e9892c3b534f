package handlers

import (
	"net/http"
	"time"

	"biofinder/internal/domain"
	"biofinder/internal/httpserver/deps"
	"biofinder/internal/logger"
)

type searchResponse struct {
	Query string              `json:"query"`
	Hits  []*domain.SearchHit `json:"hits"`
	Count int                 `json:"count"`
}

// Search ranks tool metadata against a free-text functional query.
// An empty or whitespace query is a valid request with zero hits.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		query := r.URL.Query().Get("q")
		cat := d.Catalog.Load()

		hits := cat.SearchByFunction(query, limitParam(r, d.SearchLimit))
		if hits == nil {
			hits = []*domain.SearchHit{}
		}

		d.Logger.Debug("search request",
			logger.String("query", query),
			logger.Int("hits", len(hits)))
		d.Metrics.ObserveQuery("search_by_function", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, searchResponse{
			Query: query,
			Hits:  hits,
			Count: len(hits),
		})
	}
}
