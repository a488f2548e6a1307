package cfg

import (
	"context"
	"errors"
	"fmt"
	"vidgrab/internal/domain/keys"
	"vidgrab/internal/parsing"
	"vidgrab/internal/shell"
	"vidgrab/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getCmd downloads the URLs given as arguments.
func (p *program) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get URL [URL...]",
		Short: "Download one or more videos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := viper.GetString(keys.OutputDir)
			if len(args) == 1 {
				p.dl.Download(p.ctx, args[0], dir)
				return nil
			}
			p.dl.RunBatch(p.ctx, args, dir)
			return nil
		},
	}
}

// batchCmd downloads every URL listed in a file.
func (p *program) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Download the videos listed in a file (one URL per line, '#' comments)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := parsing.NewURLFileParser(args[0]).ParseURLs()
			if err != nil {
				return fmt.Errorf("failed to read URL file: %w", err)
			}
			if len(urls) == 0 {
				logging.I("No URLs found in %q", args[0])
				return nil
			}
			p.dl.RunBatch(p.ctx, urls, viper.GetString(keys.OutputDir))
			return nil
		},
	}
}

// shellCmd starts the interactive menu.
func (p *program) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu for single and batch downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := shell.New(p.dl, p.in, p.out, viper.GetString(keys.OutputDir)).Run(p.ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
