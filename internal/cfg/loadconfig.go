package cfg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/domain/keys"
	"vidgrab/internal/utils/logging"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// defaultConfigDir is where config.{yaml,toml,json} is looked up when no file is given.
func defaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, consts.ProgramName)
}

// loadConfig reads environment overrides and the config file into Viper.
//
// Precedence: flags, then VIDGRAB_* environment variables, then the config file, then flag defaults.
func loadConfig(configDir string) error {
	viper.SetEnvPrefix(consts.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString(keys.ConfigFile); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		logging.D(1, "Loaded config file %q", path)
		return nil
	}

	if configDir == "" {
		return nil
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config in %q: %w", configDir, err)
	}
	logging.D(1, "Loaded config file %q", viper.ConfigFileUsed())
	return nil
}
