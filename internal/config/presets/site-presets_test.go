package presets_test

import (
	"path/filepath"
	"testing"
	"vidgrab/internal/config/presets"
	"vidgrab/internal/models"
)

func TestSelectBilibili(t *testing.T) {
	cfg := presets.Select(models.PlatformBilibili, "out", models.DownloadOptions{MaxHeight: 720})

	want := "30120/30116/30112/30080/30077/30064/30032/30016/best"
	if cfg.Format != want {
		t.Fatalf("format got %q, want %q", cfg.Format, want)
	}
	if n := len(cfg.FormatPreference); n != 9 || cfg.FormatPreference[n-1] != "best" {
		t.Fatalf("unexpected preference list %v", cfg.FormatPreference)
	}
	if cfg.Platform != models.PlatformBilibili {
		t.Fatalf("platform not carried: %q", cfg.Platform)
	}
}

func TestSelectDefault(t *testing.T) {
	for _, p := range []models.Platform{models.PlatformYouTube, models.PlatformUnknown} {
		cfg := presets.Select(p, "out", models.DownloadOptions{})
		if cfg.Format != "best[ext=mp4]/best" {
			t.Errorf("%s: format got %q", p, cfg.Format)
		}
	}
}

func TestSelectHeightCap(t *testing.T) {
	cfg := presets.Select(models.PlatformYouTube, "out", models.DownloadOptions{MaxHeight: 1080})
	if cfg.Format != "best[ext=mp4][height<=1080]/best[ext=mp4]/best" {
		t.Fatalf("format got %q", cfg.Format)
	}
}

// TestSelectCommon checks the settings shared by every platform -------------------------------------------
func TestSelectCommon(t *testing.T) {
	dir := filepath.Join("downloads", "jpk")
	opts := models.DownloadOptions{CookiesFromBrowser: "firefox", CookieFile: "/tmp/c.txt", Retries: 3}

	for _, p := range []models.Platform{models.PlatformYouTube, models.PlatformBilibili, models.PlatformUnknown} {
		cfg := presets.Select(p, dir, opts)

		if !cfg.RestrictFilenames || !cfg.NoWarnings {
			t.Errorf("%s: restrict filenames and no warnings must be set: %+v", p, cfg)
		}
		if want := filepath.Join(dir, "%(title)s.%(ext)s"); cfg.OutputTemplate != want {
			t.Errorf("%s: template got %q, want %q", p, cfg.OutputTemplate, want)
		}
		if cfg.OutputDir != dir {
			t.Errorf("%s: output dir got %q", p, cfg.OutputDir)
		}
		if cfg.CookiesFromBrowser != "firefox" || cfg.CookieFile != "/tmp/c.txt" || cfg.Retries != 3 {
			t.Errorf("%s: transport options not copied: %+v", p, cfg)
		}
	}
}

func TestSelectFreshRecords(t *testing.T) {
	a := presets.Select(models.PlatformBilibili, "out", models.DownloadOptions{})
	a.FormatPreference[0] = "mutated"

	b := presets.Select(models.PlatformBilibili, "out", models.DownloadOptions{})
	if b.FormatPreference[0] != "30120" {
		t.Fatalf("records share state, got %q", b.FormatPreference[0])
	}
}
