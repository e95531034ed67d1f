// Command dungeonserved runs the preview server: WebSocket step playback
// plus JSON generate/export endpoints for browser clients.
package main

import (
	"flag"
	"os"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/server"
)

func main() {
	configFile := flag.String("config", "data/dungeonforge.yaml", "Path to config YAML file")
	loggingFile := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	address := flag.String("address", "", "Listen address (overrides config)")
	flag.Parse()

	logger.Initialize(logger.LoadConfig(*loggingFile))

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Config file unreadable, using defaults", "path", *configFile, "err", err)
	}
	if *address != "" {
		cfg.Server.Address = *address
	}

	logger.Info("Starting dungeonforge preview server",
		"address", cfg.Server.Address,
		"step_interval_ms", cfg.Server.StepIntervalMS)

	if err := server.New(cfg.Server).ListenAndServe(); err != nil {
		logger.Error("Server exited", "err", err)
		os.Exit(1)
	}
}
