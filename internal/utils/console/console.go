// Package console resolves the console encoding and colour support.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Resolve looks up an encoding by its WHATWG name or alias (e.g. "utf-8", "gbk", "shift_jis").
func Resolve(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown console encoding %q: %w", name, err)
	}
	return enc, nil
}

// isUTF8 reports whether enc needs no transcoding.
func isUTF8(enc encoding.Encoding) bool {
	if enc == unicode.UTF8 || enc == encoding.Nop {
		return true
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// Writer wraps w so UTF-8 text written to it reaches w in the named encoding.
func Writer(w io.Writer, name string) (io.Writer, error) {
	enc, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return w, nil
	}
	// Runes the encoding cannot represent are replaced instead of failing the write.
	return encoding.ReplaceUnsupported(enc.NewEncoder()).Writer(w), nil
}

// Reader wraps r so text in the named encoding is read as UTF-8.
func Reader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return r, nil
	}
	return enc.NewDecoder().Reader(r), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Streams is the process console after encoding and colour setup.
type Streams struct {
	In    io.Reader
	Out   io.Writer
	Color bool
}

// Std sets up stdin and stdout with the named encoding.
//
// Stdout goes through go-colorable so ANSI colours also render on Windows consoles.
// Colour is only enabled when stdout is a terminal.
func Std(encodingName string) (*Streams, error) {
	out, err := Writer(colorable.NewColorableStdout(), encodingName)
	if err != nil {
		return nil, err
	}
	in, err := Reader(os.Stdin, encodingName)
	if err != nil {
		return nil, err
	}
	return &Streams{
		In:    in,
		Out:   out,
		Color: IsTerminal(os.Stdout),
	}, nil
}
