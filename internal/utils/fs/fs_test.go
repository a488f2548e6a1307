package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
	"vidgrab/internal/utils/fs"
)

// TestSanitizeFilename checks character replacement and truncation -----------------------------------------
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "My Video", "My Video"},
		{"all forbidden", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"empty", "", ""},
		{"unicode kept", "视频：第一集", "视频：第一集"},
		{"exactly 200", strings.Repeat("a", 200), strings.Repeat("a", 200)},
		{"over 200", strings.Repeat("b", 250), strings.Repeat("b", 200)},
		{"replace then truncate", strings.Repeat("?", 201), strings.Repeat("_", 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fs.SanitizeFilename(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameMultibyteTruncation(t *testing.T) {
	in := strings.Repeat("日", 300)
	got := fs.SanitizeFilename(in)

	if n := utf8.RuneCountInString(got); n != 200 {
		t.Fatalf("expected 200 runes, got %d", n)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8")
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	in := `a:b/c` + strings.Repeat("x", 300)
	once := fs.SanitizeFilename(in)
	if twice := fs.SanitizeFilename(once); twice != once {
		t.Fatalf("second pass changed the name: %q -> %q", once, twice)
	}
}

// TestEnsureDir runs checks for directory creation ----------------------------------------------------------
func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "downloads", "jpk")

	if err := fs.EnsureDir(nested); err != nil {
		t.Fatalf("expected nested directory to be created, got %v", err)
	}
	info, err := os.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected %q to be a directory, err: %v", nested, err)
	}

	// Second call on an existing directory
	if err := fs.EnsureDir(nested); err != nil {
		t.Fatalf("expected existing directory to pass, got %v", err)
	}
}

func TestEnsureDirFailures(t *testing.T) {
	if err := fs.EnsureDir(""); err == nil {
		t.Fatalf("expected error for empty path")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := fs.EnsureDir(filepath.Join(file, "child")); err == nil {
		t.Fatalf("expected error when a parent is a regular file")
	}
}
