package browser

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/models"
	"vidgrab/internal/utils/logging"
)

const (
	netscapeHeader = "# Netscape HTTP Cookie File"
	httpOnlyPrefix = "#HttpOnly_"
)

// WriteNetscape writes cookies in the Netscape cookie file format read by yt-dlp's --cookies.
func WriteNetscape(w io.Writer, cookies []*http.Cookie) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, netscapeHeader)

	for _, c := range cookies {
		if c == nil || c.Domain == "" {
			continue
		}
		domain := c.Domain
		if c.HttpOnly {
			domain = httpOnlyPrefix + domain
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		var expires int64
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain,
			boolField(strings.HasPrefix(c.Domain, ".")),
			path,
			boolField(c.Secure),
			expires,
			c.Name,
			c.Value)
	}
	return bw.Flush()
}

// ReadNetscape parses a Netscape cookie file. Malformed lines are skipped.
func ReadNetscape(r io.Reader) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
			httpOnly = true
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			logging.D(3, "Skipping malformed cookie line %q", line)
			continue
		}
		c := &http.Cookie{
			Domain:   fields[0],
			Path:     fields[2],
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			Name:     fields[5],
			Value:    fields[6],
			HttpOnly: httpOnly,
		}
		if exp, err := strconv.ParseInt(fields[4], 10, 64); err == nil && exp > 0 {
			c.Expires = time.Unix(exp, 0)
		}
		cookies = append(cookies, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cookies, nil
}

// ReadNetscapeFile parses the cookie file at path.
func ReadNetscapeFile(path string) ([]*http.Cookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadNetscape(f)
}

// SaveCookieFile writes cookies to path, readable only by the current user.
func SaveCookieFile(path string, cookies []*http.Cookie) error {
	if err := os.MkdirAll(filepath.Dir(path), consts.PermsOutputDir); err != nil {
		return fmt.Errorf("failed to create cookie directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return fmt.Errorf("failed to open cookie file %q: %w", path, err)
	}
	if err := WriteNetscape(f, cookies); err != nil {
		f.Close()
		return fmt.Errorf("failed to write cookie file %q: %w", path, err)
	}
	return f.Close()
}

// Exporter dumps browser cookies to a per-platform cookie file.
type Exporter struct {
	Cookies *Cookies

	// PathFor locates the cookie file. Defaults to CookieFilePath.
	PathFor func(models.Platform) (string, error)
}

// NewExporter returns an Exporter reading from the named browser ("" for all).
func NewExporter(browserName string) *Exporter {
	return &Exporter{
		Cookies: NewCookies(browserName),
		PathFor: CookieFilePath,
	}
}

// Export writes the cookies for rawURL's site and returns the file path.
//
// An empty path with a nil error means no cookies were found.
func (e *Exporter) Export(rawURL string, p models.Platform) (string, error) {
	cookies, err := e.Cookies.GetCookies(rawURL, p)
	if err != nil {
		return "", err
	}
	if len(cookies) == 0 {
		return "", nil
	}

	pathFor := e.PathFor
	if pathFor == nil {
		pathFor = CookieFilePath
	}
	path, err := pathFor(p)
	if err != nil {
		return "", fmt.Errorf("failed to locate cookie file: %w", err)
	}
	if err := SaveCookieFile(path, cookies); err != nil {
		return "", err
	}
	logging.D(1, "Exported %d cookies to %q", len(cookies), path)
	return path, nil
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
