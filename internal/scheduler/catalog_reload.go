package scheduler

import (
	"context"
	"time"

	"biofinder/internal/catalog"
	"biofinder/internal/domain"
	"biofinder/internal/logger"
	"biofinder/internal/metrics"
	"biofinder/internal/sources/cvmfs"
	"biofinder/internal/sources/meta"
	redisstore "biofinder/internal/store/redis"
)

// CatalogReloader handles periodic reloading of the two source files.
// Every reload builds a complete replacement catalog and swaps it into
// the shared holder; readers never see a half-loaded state.
type CatalogReloader struct {
	metadataFile  string
	cacheFile     string
	holder        *catalog.Holder
	store         *redisstore.Store // nil when redis is disabled
	metrics       *metrics.Metrics  // nil when metrics are disabled
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader
func NewCatalogReloader(
	metadataFile string,
	cacheFile string,
	holder *catalog.Holder,
	store *redisstore.Store,
	m *metrics.Metrics,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		metadataFile:  metadataFile,
		cacheFile:     cacheFile,
		holder:        holder,
		store:         store,
		metrics:       m,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads once synchronously, then reloads on the interval and on
// manual triggers until Stop or context cancellation.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog", logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog", logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads both sources and publishes a fresh catalog. A source
// that fails to load contributes an empty collection instead of
// aborting the reload; a catalog over partial data still answers
// queries, so Reload itself never returns an error today. The error
// return is kept for the Start contract.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	start := time.Now()
	cr.logger.Info("reloading catalog",
		logger.String("metadata_file", cr.metadataFile),
		logger.String("cache_file", cr.cacheFile))

	tools, err := meta.Load(cr.metadataFile)
	if err != nil {
		cr.logger.Error("failed to load tool metadata, continuing without it",
			logger.String("file", cr.metadataFile),
			logger.Error(err))
		tools = nil
	}

	containers, info, err := cvmfs.Load(cr.cacheFile)
	if err != nil {
		cr.logger.Error("failed to load container snapshot, continuing without it",
			logger.String("file", cr.cacheFile),
			logger.Error(err))
		containers, info = nil, domain.CacheInfo{}
	}

	cat := catalog.Build(tools, containers, info, cr.logger)
	cr.holder.Swap(cat)

	// Fuzzy outcomes can shift with the key set, so cached
	// resolutions from the previous catalog are stale now.
	if cr.store != nil {
		if err := cr.store.FlushResolutions(ctx); err != nil {
			cr.logger.Warn("failed to flush cached resolutions", logger.Error(err))
		}
	}

	elapsed := time.Since(start)
	cr.metrics.ObserveCatalogBuild(cat.ToolCount(), cat.ContainerCount(), elapsed)
	cr.logger.Info("catalog reloaded",
		logger.Int("tools", cat.ToolCount()),
		logger.Int("containers", cat.ContainerCount()),
		logger.Duration("elapsed", elapsed))

	return nil
}
