package cmd

import (
	"fmt"

	"reach-estimator/core/config"
	"reach-estimator/core/graph"
	"reach-estimator/core/logger"
	"reach-estimator/core/observability"
	"reach-estimator/feature/targeting"

	"go.uber.org/zap"
)

// deps bundles what every command needs.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	client graph.Client
}

// bootstrap loads configuration, builds the logger and the instrumented Graph client.
func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := graph.NewClient(cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph client: %w", err)
	}

	return &deps{
		cfg:    cfg,
		logger: logg,
		client: observability.NewInstrumentedClient(client),
	}, nil
}

func (d *deps) service(account string) *targeting.Service {
	if account == "" {
		account = d.cfg.Graph.AdAccount
	}
	return targeting.NewService(d.client, account, d.cfg.Targeting, d.logger)
}
