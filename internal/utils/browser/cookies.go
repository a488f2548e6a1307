// Package browser reads cookies from local browser stores and hands them to the downloaders.
package browser

import (
	"fmt"
	"net/http"
	"strings"
	"vidgrab/internal/models"
	"vidgrab/internal/utils/logging"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register cookie store finders
)

// Cookies reads cookies for a site from the browsers installed on this machine.
type Cookies struct {
	// Browser limits the search to one browser (e.g. "firefox"). Empty means all.
	Browser string

	findStores func() []kooky.CookieStore
}

// NewCookies returns a Cookies reader for the given browser ("" for all browsers).
func NewCookies(browserName string) *Cookies {
	return &Cookies{
		Browser:    strings.ToLower(strings.TrimSpace(browserName)),
		findStores: kooky.FindAllCookieStores,
	}
}

// GetCookies retrieves the valid cookies for the site a URL belongs to.
func (c *Cookies) GetCookies(rawURL string, p models.Platform) ([]*http.Cookie, error) {
	domain, err := CookieDomain(rawURL, p)
	if err != nil {
		return nil, fmt.Errorf("failed to extract base domain: %w", err)
	}

	stores := c.findStores()
	attempted := make([]string, 0, len(stores))
	var cookies []*http.Cookie

	for _, store := range stores {
		browserName := store.Browser()
		if c.Browser != "" && !strings.EqualFold(browserName, c.Browser) {
			continue
		}
		attempted = append(attempted, browserName)
		logging.D(2, "Attempting to read cookies from %s", browserName)

		kc, err := store.ReadCookies(kooky.Valid, kooky.DomainHasSuffix(domain))
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", browserName, err)
			continue
		}
		if len(kc) > 0 {
			logging.D(1, "Read %d cookies from %s for domain %s", len(kc), browserName, domain)
			cookies = append(cookies, convertToHTTPCookies(kc)...)
		}
	}
	closeStores(stores)

	logging.D(1, "Attempted to read cookies from the following browsers: %v", attempted)
	if len(cookies) == 0 {
		logging.I("No cookies found for %q, proceeding without cookies", domain)
	}
	return cookies, nil
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, 0, len(kookyCookies))
	for _, c := range kookyCookies {
		if c == nil {
			continue
		}
		httpCookies = append(httpCookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return httpCookies
}

func closeStores(stores []kooky.CookieStore) {
	for _, s := range stores {
		if err := s.Close(); err != nil {
			logging.D(3, "Failed to close cookie store for %s: %v", s.Browser(), err)
		}
	}
}
