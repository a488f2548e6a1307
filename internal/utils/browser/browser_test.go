package browser

import (
	"bytes"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"vidgrab/internal/models"

	"github.com/browserutils/kooky"
)

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.bilibili.com/video/BV1xx411c7mD", "bilibili.com"},
		{"https://m.youtube.com/watch?v=abc", "youtube.com"},
		{"https://news.bbc.co.uk/x", "bbc.co.uk"},
	}
	for _, tt := range tests {
		got, err := BaseDomain(tt.in)
		if err != nil {
			t.Fatalf("BaseDomain(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("BaseDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := BaseDomain("not a url"); err == nil {
		t.Errorf("expected error for URL without host")
	}
}

func TestCookieDomainShortLinks(t *testing.T) {
	if d, _ := CookieDomain("https://b23.tv/abc", models.PlatformBilibili); d != "bilibili.com" {
		t.Errorf("expected bilibili.com for b23.tv, got %q", d)
	}
	if d, _ := CookieDomain("https://youtu.be/abc", models.PlatformYouTube); d != "youtube.com" {
		t.Errorf("expected youtube.com for youtu.be, got %q", d)
	}
	if d, _ := CookieDomain("https://vimeo.com/1", models.PlatformUnknown); d != "vimeo.com" {
		t.Errorf("expected vimeo.com for unknown platform, got %q", d)
	}
}

// TestNetscape checks the cookie file format -------------------------------------------------------------
func TestNetscape(t *testing.T) {
	exp := time.Unix(1893456000, 0)
	in := []*http.Cookie{
		{Name: "SESSDATA", Value: "abc%2C123", Domain: ".bilibili.com", Path: "/", Expires: exp, Secure: true, HttpOnly: true},
		{Name: "PREF", Value: "f6=8", Domain: "www.youtube.com", Path: ""},
		{Name: "skipped", Value: "no domain"},
	}

	var buf bytes.Buffer
	if err := WriteNetscape(&buf, in); err != nil {
		t.Fatalf("WriteNetscape: %v", err)
	}

	text := buf.String()
	if !strings.HasPrefix(text, netscapeHeader+"\n") {
		t.Fatalf("missing header:\n%s", text)
	}
	wantLine := "#HttpOnly_.bilibili.com\tTRUE\t/\tTRUE\t1893456000\tSESSDATA\tabc%2C123\n"
	if !strings.Contains(text, wantLine) {
		t.Fatalf("missing SESSDATA line, got:\n%s", text)
	}
	if !strings.Contains(text, "www.youtube.com\tFALSE\t/\tFALSE\t0\tPREF\tf6=8\n") {
		t.Fatalf("missing PREF line, got:\n%s", text)
	}

	out, err := ReadNetscape(strings.NewReader(text + "garbage line\n"))
	if err != nil {
		t.Fatalf("ReadNetscape: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 cookies back, got %d", len(out))
	}
	if !out[0].HttpOnly || !out[0].Secure || out[0].Domain != ".bilibili.com" || !out[0].Expires.Equal(exp) {
		t.Fatalf("SESSDATA fields lost: %+v", out[0])
	}
	if !out[1].Expires.IsZero() {
		t.Fatalf("session cookie should have no expiry, got %v", out[1].Expires)
	}
}

func TestSaveCookieFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies", "bilibili.txt")
	cookies := []*http.Cookie{{Name: "SESSDATA", Value: "x", Domain: ".bilibili.com", Path: "/"}}

	if err := SaveCookieFile(path, cookies); err != nil {
		t.Fatalf("SaveCookieFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o077 != 0 {
		t.Fatalf("cookie file should be private, got %v", info.Mode().Perm())
	}

	back, err := ReadNetscapeFile(path)
	if err != nil || len(back) != 1 || back[0].Name != "SESSDATA" {
		t.Fatalf("unexpected read back: %v, %v", back, err)
	}
}

func TestNewJar(t *testing.T) {
	jar, err := NewJar([]*http.Cookie{
		{Name: "SESSDATA", Value: "x", Domain: ".bilibili.com", Path: "/", Secure: true},
		{Name: "orphan", Value: "y"},
	})
	if err != nil {
		t.Fatalf("NewJar: %v", err)
	}

	u, _ := url.Parse("https://www.bilibili.com/video/BV1")
	got := jar.Cookies(u)
	if len(got) != 1 || got[0].Name != "SESSDATA" {
		t.Fatalf("expected SESSDATA for subdomain, got %v", got)
	}
}

// TestExportNoCookies checks that an empty browser search writes nothing ------------------------------
func TestExportNoCookies(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{
		Cookies: &Cookies{findStores: func() []kooky.CookieStore { return nil }},
		PathFor: func(p models.Platform) (string, error) { return filepath.Join(dir, p.String()+".txt"), nil },
	}

	path, err := e.Export("https://www.bilibili.com/video/BV1", models.PlatformBilibili)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no cookie file, got %q", path)
	}
	if _, err := os.Stat(filepath.Join(dir, "bilibili.txt")); !os.IsNotExist(err) {
		t.Fatalf("cookie file should not exist, stat err: %v", err)
	}
}
