package cfg

import (
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initDownloadFlags initializes user flag settings related to downloading.
func initDownloadFlags(rootCmd *cobra.Command) error {
	// Output directory
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", consts.DefaultOutputDir, "Directory to save videos into (created if missing)")
	if err := viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir)); err != nil {
		return err
	}

	// Height cap
	rootCmd.PersistentFlags().Int(keys.MaxHeight, 0, "Prefer MP4 streams at or below this height, e.g. 1080 (0 disables)")
	if err := viper.BindPFlag(keys.MaxHeight, rootCmd.PersistentFlags().Lookup(keys.MaxHeight)); err != nil {
		return err
	}

	// Backend
	rootCmd.PersistentFlags().String(keys.Backend, consts.BackendYTDLP, "Download backend (ytdlp, or native for pure-Go YouTube downloads)")
	if err := viper.BindPFlag(keys.Backend, rootCmd.PersistentFlags().Lookup(keys.Backend)); err != nil {
		return err
	}

	// yt-dlp binary
	rootCmd.PersistentFlags().String(keys.YTDLPPath, "", "Path to the yt-dlp executable (default: looked up on PATH)")
	if err := viper.BindPFlag(keys.YTDLPPath, rootCmd.PersistentFlags().Lookup(keys.YTDLPPath)); err != nil {
		return err
	}

	// Retries
	rootCmd.PersistentFlags().Int(keys.DLRetries, 0, "Number of download retries passed to yt-dlp (0 keeps its default)")
	if err := viper.BindPFlag(keys.DLRetries, rootCmd.PersistentFlags().Lookup(keys.DLRetries)); err != nil {
		return err
	}

	// Cookies
	rootCmd.PersistentFlags().String(keys.CookieSource, "", "Browser to take cookies from (e.g. 'firefox')")
	if err := viper.BindPFlag(keys.CookieSource, rootCmd.PersistentFlags().Lookup(keys.CookieSource)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Bool(keys.ExportCookies, false, "Export browser cookies to a cookie file before each download (needed by the native backend)")
	if err := viper.BindPFlag(keys.ExportCookies, rootCmd.PersistentFlags().Lookup(keys.ExportCookies)); err != nil {
		return err
	}
	return nil
}

// initProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {
	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Config file (default: $XDG_CONFIG_HOME/vidgrab/config.yaml)")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	// Console encoding
	rootCmd.PersistentFlags().String(keys.ConsoleEncoding, consts.DefaultEncoding, "Console text encoding (e.g. utf-8, gbk)")
	if err := viper.BindPFlag(keys.ConsoleEncoding, rootCmd.PersistentFlags().Lookup(keys.ConsoleEncoding)); err != nil {
		return err
	}

	// Log file
	rootCmd.PersistentFlags().String(keys.LogFile, "", "Write a structured JSON log to this file")
	if err := viper.BindPFlag(keys.LogFile, rootCmd.PersistentFlags().Lookup(keys.LogFile)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}
