package ports

import "go.trai.ch/multinode/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for root. An empty path selects the
	// default file in root, which may be absent.
	Load(root, path string) (*domain.Config, error)
}
