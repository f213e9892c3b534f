package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	MetadataFile       string        // path to the tool metadata YAML file
	ContainerCacheFile string        // path to the container snapshot (json or json.gz)
	ReloadInterval     time.Duration // interval to reload both source files (default: 24h)

	SearchLimit int // default result count for functional search
	ListLimit   int // default result count for tool listing

	// Redis (optional; empty addr disables usage tracking and the
	// resolution cache)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BIOFINDER_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BIOFINDER_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BIOFINDER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BIOFINDER_PRETTY_LOG", true),

		// Data sources
		MetadataFile:       getenv("BIOFINDER_METADATA_FILE", "/data/toolfinder_meta.yaml"),
		ContainerCacheFile: getenv("BIOFINDER_CONTAINER_CACHE_FILE", "/data/galaxy_singularity_cache.json.gz"),
		ReloadInterval:     mustDuration("BIOFINDER_RELOAD_INTERVAL", 24*time.Hour),

		// Query defaults
		SearchLimit: getenvInt("BIOFINDER_SEARCH_LIMIT", 10),
		ListLimit:   getenvInt("BIOFINDER_LIST_LIMIT", 50),

		// Redis settings (all ignored when addr is empty)
		RedisAddr:           getenv("BIOFINDER_REDIS_ADDR", ""),
		RedisUser:           getenv("BIOFINDER_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("BIOFINDER_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BIOFINDER_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
