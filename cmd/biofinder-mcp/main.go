package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"biofinder/internal/catalog"
	"biofinder/internal/config"
	"biofinder/internal/logger"
	"biofinder/internal/mcpserver"
	"biofinder/internal/scheduler"
)

// biofinder-mcp serves the catalog over MCP stdio. It loads the source
// files once at startup; assistants restart the process to pick up
// fresh snapshots, so there is no periodic reloader here.
func main() {
	cfg := config.Load()

	// stdout carries the protocol; JSON logs go to stderr.
	loggerClient := logger.New(cfg.LogLevel, false)

	holder := catalog.NewHolder()
	reloader := scheduler.NewCatalogReloader(
		cfg.MetadataFile,
		cfg.ContainerCacheFile,
		holder,
		nil,
		nil,
		loggerClient,
		cfg.ReloadInterval,
		nil,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reloader.Reload(ctx); err != nil {
		log.Fatalf("biofinder-mcp failed to load catalog: %v", err)
	}

	srv := mcpserver.New(holder, cfg.SearchLimit, cfg.ListLimit, loggerClient)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("biofinder-mcp failed: %v", err)
	}
}
