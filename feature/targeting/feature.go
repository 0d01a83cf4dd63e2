package targeting

import (
	"reach-estimator/core/graph"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the targeting routes on the application.
type Feature struct {
	service *Service
}

// NewFeature creates the targeting feature.
func NewFeature(client graph.Client, account string, cfg Config, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(client, account, cfg, logger)}
}

func (f *Feature) Name() string {
	return "targeting"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
