package parsing_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"vidgrab/internal/parsing"
	"vidgrab/internal/utils/logging"
)

// TestParseURLs checks URL file parsing ----------------------------------------------------------------------
func TestParseURLs(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Output()
	logging.SetOutput(&buf, false)
	t.Cleanup(func() { logging.SetOutput(prev, false) })

	content := strings.Join([]string{
		"# my list",
		"https://www.youtube.com/watch?v=WCDLyXJgbIo",
		"",
		"   https://b23.tv/abc   ",
		"https://www.youtube.com/watch?v=WCDLyXJgbIo",
		"http://bad url\x7f",
		"https://vimeo.com/1",
	}, "\n")

	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := parsing.NewURLFileParser(path).ParseURLs()
	if err != nil {
		t.Fatalf("ParseURLs: %v", err)
	}
	want := []string{
		"https://www.youtube.com/watch?v=WCDLyXJgbIo",
		"https://b23.tv/abc",
		"https://www.youtube.com/watch?v=WCDLyXJgbIo",
		"https://vimeo.com/1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !strings.Contains(buf.String(), "is invalid") {
		t.Fatalf("expected invalid URL to be reported, got %q", buf.String())
	}
}

func TestParseURLListKeepsLinesAsWritten(t *testing.T) {
	in := "HTTPS://WWW.YouTube.com/watch?v=A&list=x\nhttps://b23.tv/a\nhttps://b23.tv/a\n"
	got, err := parsing.ParseURLList(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseURLList: %v", err)
	}
	want := []string{"HTTPS://WWW.YouTube.com/watch?v=A&list=x", "https://b23.tv/a", "https://b23.tv/a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseURLsMissingFile(t *testing.T) {
	if _, err := parsing.NewURLFileParser(filepath.Join(t.TempDir(), "nope.txt")).ParseURLs(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadURLsUntilBlank(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("a\n  b  \n\nc\n"))
	urls, terminated := parsing.ReadURLsUntilBlank(sc)
	if !terminated || !reflect.DeepEqual(urls, []string{"a", "b"}) {
		t.Fatalf("got %v (terminated=%v)", urls, terminated)
	}

	// The scanner continues after the blank line
	if !sc.Scan() || sc.Text() != "c" {
		t.Fatalf("expected remaining input to be readable")
	}

	urls, terminated = parsing.ReadURLsUntilBlank(bufio.NewScanner(strings.NewReader("x\ny")))
	if terminated || !reflect.DeepEqual(urls, []string{"x", "y"}) {
		t.Fatalf("EOF case got %v (terminated=%v)", urls, terminated)
	}
}
