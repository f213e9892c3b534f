package redis

const (
	// KeyPrefixUsage is the prefix for per-tool lookup counters
	KeyPrefixUsage = "biofinder:usage:"
	// KeyPrefixResolve is the prefix for cached query resolutions
	KeyPrefixResolve = "biofinder:resolve:"
	// KeyAllTools is the key for the set of all counted tool keys
	KeyAllTools = "biofinder:tools:all"
)

// UsageKey returns the Redis key for a tool's lookup counter
func UsageKey(toolKey string) string {
	return KeyPrefixUsage + toolKey
}

// ResolveKey returns the Redis key for a cached query resolution
func ResolveKey(query string) string {
	return KeyPrefixResolve + query
}
