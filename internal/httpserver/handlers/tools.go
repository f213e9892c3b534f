package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"biofinder/internal/domain"
	"biofinder/internal/httpserver/deps"
	"biofinder/internal/logger"
	redisstore "biofinder/internal/store/redis"
)

type toolListResponse struct {
	Tools []string `json:"tools"`
	Count int      `json:"count"`
	Total int      `json:"total"`
}

// ListTools serves the alphabetical tool ID listing.
func ListTools(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		cat := d.Catalog.Load()

		ids := cat.ListTools(limitParam(r, d.ListLimit))
		d.Metrics.ObserveQuery("list_tools", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, toolListResponse{
			Tools: ids,
			Count: len(ids),
			Total: cat.ToolCount(),
		})
	}
}

// GetTool resolves {name} and serves metadata plus container history.
func GetTool(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		query := chi.URLParam(r, "name")
		cat := d.Catalog.Load()

		res, err := cat.FindTool(cachedQuery(ctx, d, query))
		if err != nil {
			if domain.IsNotFound(err) {
				d.Metrics.ObserveQuery("find_tool", "not_found", time.Since(start))
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			d.Metrics.ObserveQuery("find_tool", "error", time.Since(start))
			writeError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		res.Query = query

		recordResolution(ctx, d, query, res.Key)
		d.Metrics.ObserveQuery("find_tool", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, res)
	}
}

// GetVersions resolves {name} and serves the full version history.
func GetVersions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		query := chi.URLParam(r, "name")
		cat := d.Catalog.Load()

		listing, err := cat.ContainerVersions(cachedQuery(ctx, d, query))
		if err != nil {
			if domain.IsNotFound(err) {
				d.Metrics.ObserveQuery("container_versions", "not_found", time.Since(start))
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			d.Metrics.ObserveQuery("container_versions", "error", time.Since(start))
			writeError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		listing.Query = query

		recordResolution(ctx, d, query, listing.Key)
		d.Metrics.ObserveQuery("container_versions", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, listing)
	}
}

// cachedQuery substitutes a previously resolved key for the raw query
// when the resolution cache has one, skipping the fuzzy scan. Cache
// errors fall back to the raw query.
func cachedQuery(ctx context.Context, d deps.Deps, query string) string {
	if d.Store == nil {
		return query
	}
	key, err := d.Store.GetCachedResolution(ctx, domain.NormalizeKey(query))
	if err != nil || key == "" {
		return query
	}
	return key
}

// recordResolution tracks usage and caches the resolution, best effort.
func recordResolution(ctx context.Context, d deps.Deps, query, key string) {
	if d.Store == nil {
		return
	}
	if err := d.Store.IncrementLookup(ctx, key); err != nil {
		d.Logger.Debug("failed to record lookup", logger.Error(err))
	}
	norm := domain.NormalizeKey(query)
	if norm == key {
		return // exact hit, nothing worth caching
	}
	if err := d.Store.CacheResolution(ctx, norm, key, redisstore.DefaultResolutionTTL); err != nil {
		d.Logger.Debug("failed to cache resolution", logger.Error(err))
	}
}
