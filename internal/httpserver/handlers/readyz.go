package handlers

import (
	"net/http"

	"biofinder/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Keys  int  `json:"keys"`
}

// Readyz reports ready once the catalog holds any data. Before the
// first successful load the holder serves an empty snapshot, which is
// queryable but not useful to route traffic to.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.Catalog.Load()
		ready := cat.KeyCount() > 0

		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{
			Ready: ready,
			Keys:  cat.KeyCount(),
		})
	}
}
