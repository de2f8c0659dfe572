// Package config provides the configuration loader for vouch.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default configuration file name.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.VouchFileName}
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; defaults apply.
func (l *FileConfigLoader) Load(cwd string) (domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	}

	var file Vouchfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
	}

	settings := domain.DefaultSettings()
	if file.CacheDir != "" {
		settings.CacheDir = file.CacheDir
	}
	if file.Parallelism > 0 {
		settings.Parallelism = file.Parallelism
	}
	if len(file.Env) > 0 {
		settings.TrackedEnv = file.Env
	}
	return settings, nil
}
