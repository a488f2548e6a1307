// Package cfg builds the vidgrab command line and wires settings into the downloader.
package cfg

import (
	"context"
	"fmt"
	"io"
	"strings"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/domain/keys"
	"vidgrab/internal/downloads"
	"vidgrab/internal/downloads/downloaders"
	"vidgrab/internal/models"
	"vidgrab/internal/utils/browser"
	"vidgrab/internal/utils/console"
	"vidgrab/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// program holds what the commands share once flags are parsed.
type program struct {
	ctx       context.Context
	in        io.Reader
	out       io.Writer
	configDir string

	// newFetcher builds the download backend from the settings.
	newFetcher func(progress io.Writer) (downloaders.Fetcher, error)

	dl      *downloads.Downloader
	logFile io.Closer
}

// Execute builds the command tree and runs it.
func Execute(ctx context.Context) error {
	p := &program{
		ctx:        ctx,
		configDir:  defaultConfigDir(),
		newFetcher: buildFetcher,
	}
	defer p.close()

	rootCmd, err := p.initCommands()
	if err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// initCommands initializes all commands and their flags.
func (p *program) initCommands() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   consts.ProgramName,
		Short: "vidgrab downloads YouTube and Bilibili videos",
		Long: "vidgrab downloads YouTube and Bilibili videos through yt-dlp.\n\n" +
			"Run without arguments to download the demo video, or use the get, batch and shell commands.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: p.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.dl.Download(p.ctx, consts.DemoURL, "")
			return nil
		},
	}

	if err := initDownloadFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initProgramFlags(rootCmd); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(p.getCmd(), p.batchCmd(), p.shellCmd())
	return rootCmd, nil
}

// setup loads the config, checks it and prepares the console, logging and downloader.
func (p *program) setup(cmd *cobra.Command, args []string) error {
	if err := loadConfig(p.configDir); err != nil {
		return err
	}
	if err := verify(); err != nil {
		return err
	}

	color := false
	if p.out == nil {
		streams, err := console.Std(viper.GetString(keys.ConsoleEncoding))
		if err != nil {
			return err
		}
		p.in, p.out, color = streams.In, streams.Out, streams.Color
	}
	logging.SetOutput(p.out, color)
	logging.Level = viper.GetInt(keys.DebugLevel)

	if path := viper.GetString(keys.LogFile); path != "" {
		f, err := logging.SetupLogging(path)
		if err != nil {
			return err
		}
		p.logFile = f
	}

	fetcher, err := p.newFetcher(p.out)
	if err != nil {
		return err
	}

	opts := models.DownloadOptions{
		MaxHeight:          viper.GetInt(keys.MaxHeight),
		CookiesFromBrowser: viper.GetString(keys.CookieSource),
		Retries:            viper.GetInt(keys.DLRetries),
	}
	p.dl = downloads.NewDownloader(fetcher, opts, viper.GetString(keys.OutputDir))
	if viper.GetBool(keys.ExportCookies) {
		p.dl.Cookies = browser.NewExporter(opts.CookiesFromBrowser)
	}

	logging.D(1, "Settings: backend=%s output=%s max-height=%d retries=%d",
		viper.GetString(keys.Backend), p.dl.DefaultDir, opts.MaxHeight, opts.Retries)
	return nil
}

func (p *program) close() {
	if p.logFile == nil {
		return
	}
	if err := p.logFile.Close(); err != nil {
		fmt.Printf("failed to close log file: %v\n", err)
	}
	p.logFile = nil
}

// buildFetcher picks the backend named by the backend setting.
func buildFetcher(progress io.Writer) (downloaders.Fetcher, error) {
	ytdlp := downloaders.NewYTDLP(viper.GetString(keys.YTDLPPath), progress)

	switch backend := strings.ToLower(viper.GetString(keys.Backend)); backend {
	case consts.BackendYTDLP:
		return ytdlp, nil
	case consts.BackendNative:
		// Bilibili has no native backend and stays on yt-dlp.
		return &downloaders.ByPlatform{
			Default: ytdlp,
			Routes: map[models.Platform]downloaders.Fetcher{
				models.PlatformYouTube: downloaders.NewNative(progress),
			},
		}, nil
	default:
		return nil, fmt.Errorf("invalid backend %q", backend)
	}
}
