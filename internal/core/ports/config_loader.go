package ports

import "go.trai.ch/vouch/internal/core/domain"

// ConfigLoader resolves the project settings from a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// falling back to defaults when no configuration file exists.
	Load(cwd string) (domain.Settings, error)
}
