package browser

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path/filepath"
	"strings"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/models"

	"github.com/adrg/xdg"
	"golang.org/x/net/publicsuffix"
)

// BaseDomain returns the base domain for an inputted URL.
func BaseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}

// CookieDomain returns the domain whose cookies authenticate a download.
//
// Short links (youtu.be, b23.tv) carry no login cookies, so known platforms
// map to their main site.
func CookieDomain(rawURL string, p models.Platform) (string, error) {
	switch p {
	case models.PlatformBilibili:
		return "bilibili.com", nil
	case models.PlatformYouTube:
		return "youtube.com", nil
	default:
		return BaseDomain(rawURL)
	}
}

// CookieFilePath returns the cache location of the exported cookie file for a platform.
func CookieFilePath(p models.Platform) (string, error) {
	return xdg.CacheFile(filepath.Join(consts.ProgramName, "cookies", p.String()+".txt"))
}

// NewJar builds a cookie jar holding the given cookies, each filed under its own domain.
func NewJar(cookies []*http.Cookie) (http.CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	for _, c := range cookies {
		host := strings.TrimPrefix(c.Domain, ".")
		if host == "" {
			continue
		}
		// The jar only returns Secure cookies for https URLs.
		site := &url.URL{Scheme: "https", Host: host, Path: "/"}
		jar.SetCookies(site, []*http.Cookie{c})
	}
	return jar, nil
}
