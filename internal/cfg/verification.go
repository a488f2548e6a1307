package cfg

import (
	"fmt"
	"strings"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/domain/keys"
	"vidgrab/internal/utils/console"

	"github.com/spf13/viper"
)

// verify verifies that the user input flags are valid
func verify() error {
	switch backend := strings.ToLower(viper.GetString(keys.Backend)); backend {
	case consts.BackendYTDLP, consts.BackendNative:
	default:
		return fmt.Errorf("invalid backend %q (want %s or %s)", backend, consts.BackendYTDLP, consts.BackendNative)
	}

	if n := viper.GetInt(keys.DLRetries); n < 0 {
		return fmt.Errorf("invalid %s %d, must not be negative", keys.DLRetries, n)
	}
	if n := viper.GetInt(keys.MaxHeight); n < 0 {
		return fmt.Errorf("invalid %s %d, must not be negative", keys.MaxHeight, n)
	}
	if n := viper.GetInt(keys.DebugLevel); n < 0 || n > 5 {
		return fmt.Errorf("invalid %s %d, must be between 0 and 5", keys.DebugLevel, n)
	}
	if strings.TrimSpace(viper.GetString(keys.OutputDir)) == "" {
		return fmt.Errorf("%s must not be empty", keys.OutputDir)
	}
	if _, err := console.Resolve(viper.GetString(keys.ConsoleEncoding)); err != nil {
		return err
	}
	return nil
}
