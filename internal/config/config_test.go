package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q", cfg.ListenPort)
	}
	if cfg.ReloadInterval != 24*time.Hour {
		t.Errorf("ReloadInterval = %v", cfg.ReloadInterval)
	}
	if cfg.SearchLimit != 10 || cfg.ListLimit != 50 {
		t.Errorf("limits = %d/%d, want 10/50", cfg.SearchLimit, cfg.ListLimit)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr should default empty (disabled), got %q", cfg.RedisAddr)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BIOFINDER_LISTEN_PORT", ":9999")
	t.Setenv("BIOFINDER_RELOAD_INTERVAL", "30m")
	t.Setenv("BIOFINDER_SEARCH_LIMIT", "25")
	t.Setenv("BIOFINDER_PRETTY_LOG", "false")
	t.Setenv("BIOFINDER_METADATA_FILE", "/tmp/meta.yaml")

	cfg := Load()

	if cfg.ListenPort != ":9999" {
		t.Errorf("ListenPort = %q", cfg.ListenPort)
	}
	if cfg.ReloadInterval != 30*time.Minute {
		t.Errorf("ReloadInterval = %v", cfg.ReloadInterval)
	}
	if cfg.SearchLimit != 25 {
		t.Errorf("SearchLimit = %d", cfg.SearchLimit)
	}
	if cfg.PrettyLog {
		t.Error("PrettyLog should be false")
	}
	if cfg.MetadataFile != "/tmp/meta.yaml" {
		t.Errorf("MetadataFile = %q", cfg.MetadataFile)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BIOFINDER_RELOAD_INTERVAL", "not-a-duration")
	t.Setenv("BIOFINDER_SEARCH_LIMIT", "lots")
	t.Setenv("BIOFINDER_PRETTY_LOG", "maybe")

	cfg := Load()

	if cfg.ReloadInterval != 24*time.Hour {
		t.Errorf("ReloadInterval = %v, want default", cfg.ReloadInterval)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want default", cfg.SearchLimit)
	}
	if !cfg.PrettyLog {
		t.Error("PrettyLog should fall back to default true")
	}
}
