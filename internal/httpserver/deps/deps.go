package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"biofinder/internal/catalog"
	"biofinder/internal/logger"
	"biofinder/internal/metrics"
	redisstore "biofinder/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Catalog *catalog.Holder // current queryable snapshot, never nil

	Store       *redisstore.Store // usage counters + resolution cache; nil when redis is disabled
	RedisClient *redis.Client     // nil when redis is disabled
	Metrics     *metrics.Metrics  // nil when metrics are disabled

	SearchLimit int // default result cap for /api/search
	ListLimit   int // default result cap for /api/tools

	ReloadTrigger chan struct{} // Channel to trigger manual catalog reload
}
