// Package shell is the interactive download menu.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"vidgrab/internal/models"
	"vidgrab/internal/parsing"

	"github.com/charmbracelet/lipgloss"
)

// Downloader runs the downloads the menu asks for.
type Downloader interface {
	Download(ctx context.Context, url, outputDir string) models.Outcome
	RunBatch(ctx context.Context, urls []string, outputDir string) []models.Outcome
}

// Menu choices.
const (
	choiceSingle = "1"
	choiceBatch  = "2"
	choiceExit   = "3"
)

// Shell reads menu choices from in and writes prompts to out.
type Shell struct {
	dl         Downloader
	in         *bufio.Scanner
	out        io.Writer
	defaultDir string

	title  lipgloss.Style
	option lipgloss.Style
	warn   lipgloss.Style
}

// New returns a Shell. Downloads go to defaultDir unless the user names another directory.
func New(dl Downloader, in io.Reader, out io.Writer, defaultDir string) *Shell {
	r := lipgloss.NewRenderer(out)
	return &Shell{
		dl:         dl,
		in:         bufio.NewScanner(in),
		out:        out,
		defaultDir: defaultDir,
		title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00F5FF")),
		option:     r.NewStyle().Foreground(lipgloss.Color("#FFD166")),
		warn:       r.NewStyle().Foreground(lipgloss.Color("#FF6B9A")),
	}
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.menu()
		choice, ok := s.readLine()
		if !ok {
			s.println("\nGoodbye!")
			return nil
		}

		switch choice {
		case choiceSingle:
			s.single(ctx)
		case choiceBatch:
			s.batch(ctx)
		case choiceExit:
			s.println("Goodbye!")
			return nil
		default:
			s.println(s.warn.Render("Invalid option, please try again!"))
		}
	}
}

func (s *Shell) menu() {
	s.println("")
	s.println(s.title.Render("=== Video Downloader ==="))
	s.println(s.option.Render(choiceSingle+".") + " Download single video")
	s.println(s.option.Render(choiceBatch+".") + " Batch download videos")
	s.println(s.option.Render(choiceExit+".") + " Exit")
	s.print("Choose an option (1-3): ")
}

func (s *Shell) single(ctx context.Context) {
	s.print("Enter video URL: ")
	url, _ := s.readLine()
	if url == "" {
		s.println(s.warn.Render("URL cannot be empty!"))
		return
	}
	s.dl.Download(ctx, url, s.askDir())
}

func (s *Shell) batch(ctx context.Context) {
	s.println("Enter video URLs, one per line (blank line to finish):")
	urls, _ := parsing.ReadURLsUntilBlank(s.in)
	if len(urls) == 0 {
		s.println(s.warn.Render("No URLs entered!"))
		return
	}
	s.dl.RunBatch(ctx, urls, s.askDir())
}

// askDir prompts for an output directory, defaulting to the configured one.
func (s *Shell) askDir() string {
	s.print(fmt.Sprintf("Output directory (Enter for %s): ", s.defaultDir))
	dir, _ := s.readLine()
	if dir == "" {
		return s.defaultDir
	}
	return dir
}

// readLine returns the next trimmed input line. ok is false at end of input.
func (s *Shell) readLine() (line string, ok bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
