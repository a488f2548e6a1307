// Package parsing reads URL lists from files and interactive input.
package parsing

import (
	"bufio"
	"io"
	"net/url"
	"os"
	"strings"
	"vidgrab/internal/utils/logging"
)

// URLFileParser is used to parse URLs from a file.
type URLFileParser struct {
	Filepath string
}

// NewURLFileParser returns an instance of a URLFileParser.
func NewURLFileParser(fpath string) *URLFileParser {
	return &URLFileParser{
		Filepath: fpath,
	}
}

// ParseURLs returns the URLs in the file, in file order.
//
// Users should put a single URL on each line in the file for proper parsing.
// Hashtags exclude lines (i.e. '# Comment'). Every other line is kept as written.
func (up *URLFileParser) ParseURLs() ([]string, error) {
	f, err := os.Open(up.Filepath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close file %q: %v", up.Filepath, err)
		}
	}()

	return ParseURLList(f)
}

// ParseURLList reads one URL per line from r, skipping blanks, '#' comments
// and lines that do not parse as a URL. Repeated lines are kept.
func ParseURLList(r io.Reader) ([]string, error) {
	var result []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		u := strings.TrimSpace(scanner.Text())
		if u == "" || strings.HasPrefix(u, "#") {
			continue
		}

		if _, err := url.Parse(u); err != nil {
			logging.E("URL %q is invalid: %v", u, err)
			continue
		}
		result = append(result, u)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReadURLsUntilBlank reads one URL per line from sc until a blank line or end of input.
//
// Lines are trimmed. The boolean is false when input ended before a blank line.
func ReadURLsUntilBlank(sc *bufio.Scanner) (urls []string, terminated bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return urls, true
		}
		urls = append(urls, line)
	}
	return urls, false
}
