package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"

	"github.com/orbitln/orbithub/constants"
)

// Load reads the application config from the environment and resolves the
// working directory, creating it if needed.
func Load() (*AppConfig, error) {
	appConfig := &AppConfig{}
	err := envconfig.Process("", appConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if appConfig.Workdir == "" {
		appConfig.Workdir = filepath.Join(xdg.DataHome, constants.APP_IDENTIFIER)
	}

	if err := os.MkdirAll(appConfig.Workdir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create workdir: %w", err)
	}

	if !filepath.IsAbs(appConfig.DatabaseUri) {
		appConfig.DatabaseUri = filepath.Join(appConfig.Workdir, appConfig.DatabaseUri)
	}

	return appConfig, nil
}
