// Package logging prints tagged console messages and mirrors them to a structured log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
	"vidgrab/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the debug level (0-5). D messages above it are dropped.
	Level int = 0

	mu       sync.Mutex
	console  io.Writer = os.Stdout
	colorful           = false
	fileLog            = zerolog.Nop()
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetOutput sets the console writer and whether tags are coloured.
func SetOutput(w io.Writer, color bool) {
	mu.Lock()
	defer mu.Unlock()

	console = w
	colorful = color
}

// Output returns the current console writer.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return console
}

// SetupLogging opens (or creates) the log file and starts mirroring messages into it.
//
// Closing the returned value stops the mirror and closes the file.
func SetupLogging(logFilePath string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), consts.PermsOutputDir); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}

	l := zerolog.New(f).With().Timestamp().Str("program", consts.ProgramName).Logger()
	mu.Lock()
	fileLog = l
	mu.Unlock()

	l.Info().Str("started", time.Now().Format(time.RFC1123Z)).Msg("logging started")
	return &logFile{f}, nil
}

type logFile struct {
	*os.File
}

func (l *logFile) Close() error {
	mu.Lock()
	fileLog = zerolog.Nop()
	mu.Unlock()
	return l.File.Close()
}

// Log returns the structured file logger for records that carry extra fields.
func Log() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := fileLog
	return &l
}

// writeLog mirrors a console message into the log file. Caller holds mu.
func writeLog(level zerolog.Level, f string, args []any, c *caller) {
	ev := fileLog.WithLevel(level)
	if c != nil {
		ev = ev.Str("func", c.funcName).Str("file", c.file).Int("line", c.line)
	}
	ev.Msg(stripAnsiCodes(sprintf(f, args)))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
