package main

import (
	"context"
	"flag"
	"os"

	"github.com/calder-analytics/cascade/pkg/api"
	"github.com/calder-analytics/cascade/pkg/cascade"
	"github.com/calder-analytics/cascade/pkg/logging"
	"github.com/calder-analytics/cascade/pkg/server"
	"github.com/calder-analytics/cascade/pkg/topology"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	topologyFile := flag.String("topology", "", "Path to YAML topology file (overrides config)")
	flag.Parse()

	logger := logging.DefaultLogger().With(logging.Component("cascade-server"))

	cfg, err := api.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *topologyFile != "" {
		cfg.TopologySource = "file"
		cfg.TopologyFile = *topologyFile
	}
	cfg.InitCORSFromEnv()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", logging.Error(err))
		os.Exit(1)
	}

	opts := api.Options{
		Logger: logger,
		Config: cfg,
	}

	switch cfg.TopologySource {
	case "file":
		provider, err := topology.LoadFile(cfg.TopologyFile)
		if err != nil {
			logger.Error("failed to load topology file", logging.Error(err))
			os.Exit(1)
		}
		opts.Provider = provider
		logger.Info("topology loaded from file",
			logging.String("path", cfg.TopologyFile),
			logging.Count(len(provider.Regions())),
		)

	case "postgres":
		provider, err := topology.NewPGProvider(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("failed to connect topology database", logging.Error(err))
			os.Exit(1)
		}
		defer provider.Close()
		opts.Provider = provider
		opts.DatabasePing = provider.Ping
		logger.Info("topology served from postgres")

	default:
		opts.Provider = topology.NewStaticProvider()
		logger.Info("topology served from built-in rosters")
	}

	resolver := topology.NewResolver(opts.Provider)
	opts.Analyzer = cascade.NewAnalyzer(opts.Provider, resolver, logger)

	apiServer := api.NewServer(opts)

	gs := server.NewGracefulServer(cfg.ListenAddr, apiServer.Handler())
	gs.SetLogger(logger)
	gs.SetTimeouts(cfg.ReadTimeout, cfg.WriteTimeout)
	gs.SetConfigReloadFunc(func() error {
		cfg.InitCORSFromEnv()
		apiServer.SetCORSOrigins(cfg.CORS.AllowedOrigins)
		return nil
	})

	if err := gs.Start(); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
}
