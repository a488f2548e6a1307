package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"vidgrab/internal/domain/consts"

	"github.com/rs/zerolog"
)

type caller struct {
	funcName string
	file     string
	line     int
}

func callerAt(skip int) *caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return &caller{funcName: "unknown", file: "unknown"}
	}
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}
	return &caller{funcName: funcName, file: filepath.Base(file), line: line}
}

// E prints an error with the calling function, file and line.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	c := callerAt(1)
	msg := build(tag(consts.RedError, consts.PlainError), format, args, c)
	fmt.Fprint(console, msg)
	writeLog(zerolog.ErrorLevel, format, args, c)

	return msg
}

// S prints a success message.
func S(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(tag(consts.GreenSuccess, consts.PlainSuccess), format, args, nil)
	fmt.Fprint(console, msg)
	writeLog(zerolog.InfoLevel, format, args, nil)

	return msg
}

// I prints an informational message.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(tag(consts.BlueInfo, consts.PlainInfo), format, args, nil)
	fmt.Fprint(console, msg)
	writeLog(zerolog.InfoLevel, format, args, nil)

	return msg
}

// D prints a debug message if l is within the configured debug level.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	c := callerAt(1)
	msg := build(tag(consts.YellowDebug, consts.PlainDebug), format, args, c)
	fmt.Fprint(console, msg)
	writeLog(zerolog.DebugLevel, format, args, c)

	return msg
}

// P prints a plain, untagged message.
func P(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build("", format, args, nil)
	fmt.Fprint(console, msg)
	writeLog(zerolog.InfoLevel, format, args, nil)

	return msg
}

func tag(colored, plain string) string {
	if colorful {
		return colored
	}
	return plain
}

func sprintf(f string, args []any) string {
	if len(args) == 0 {
		return f
	}
	return fmt.Sprintf(f, args...)
}

// build assembles "<tag><message>[Function: f - File: x : Line: n]\n".
func build(prefix, f string, args []any, c *caller) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(f) + len(args)*32 + 64)

	b.WriteString(prefix)
	b.WriteString(sprintf(f, args))

	if c != nil {
		blue, reset := "", ""
		if colorful {
			blue, reset = consts.ColorBlue, consts.ColorReset
		}
		b.WriteString(" [")
		b.WriteString(blue + "Function: " + reset)
		b.WriteString(c.funcName)
		b.WriteString(" - ")
		b.WriteString(blue + "File: " + reset)
		b.WriteString(c.file)
		b.WriteString(" : ")
		b.WriteString(blue + "Line: " + reset)
		b.WriteString(strconv.Itoa(c.line))
		b.WriteRune(']')
	}
	b.WriteRune('\n')

	return b.String()
}
