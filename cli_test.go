package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/ladder/internal/config"
	"github.com/robalobadob/ladder/internal/game"
)

func testConfig() config.Config {
	return config.Config{MaxNameLength: game.DefaultMaxNameLength, Seed: 3}
}

func TestRunFullRound(t *testing.T) {
	in := strings.NewReader("pobi,honux,crong,jk\n꽝,5000,꽝,3000\n0\nbrown\nhonux\nall\n")
	var out bytes.Buffer

	if err := run(testConfig(), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		" pobi honux crong    jk\n   꽝  5000    꽝  3000\n",
		`No participant named "brown" took part.`,
		"\nResult\n5000\n",
		"\nResult\npobi : 꽝\nhonux : 5000\ncrong : 꽝\njk : 3000\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunRepromptsOnBadInput(t *testing.T) {
	in := strings.NewReader("pobi\npobi,jk\nwin\nwin,lose\n-2\nabc\n0\npobi\n")
	var out bytes.Buffer

	if err := run(testConfig(), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "Invalid input:"); n != 4 {
		t.Fatalf("expected 4 rejected inputs, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, "\nResult\nwin\n") {
		t.Fatalf("expected pobi to keep rail 0 on a flat ladder, got:\n%s", got)
	}
}

func TestRunInputClosed(t *testing.T) {
	var out bytes.Buffer
	err := run(testConfig(), strings.NewReader("pobi,jk\n"), &out)
	if !errors.Is(err, errInputClosed) {
		t.Fatalf("expected errInputClosed, got %v", err)
	}
}

func TestRunEndsQuietlyWhenLookupsStop(t *testing.T) {
	var out bytes.Buffer
	if err := run(testConfig(), strings.NewReader("a,b\nx,y\n3\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Ladder result") {
		t.Fatalf("expected board to be printed, got:\n%s", out.String())
	}
}

func TestRunFromFiles(t *testing.T) {
	dir := t.TempDir()
	namesPath := filepath.Join(dir, "names.txt")
	prizesPath := filepath.Join(dir, "prizes.txt")
	if err := os.WriteFile(namesPath, []byte("pobi,honux\ncrong\n"), 0o600); err != nil {
		t.Fatalf("write names: %v", err)
	}
	if err := os.WriteFile(prizesPath, []byte("# prizes\n꽝\n5000\n3000\n"), 0o600); err != nil {
		t.Fatalf("write prizes: %v", err)
	}

	cfg := testConfig()
	cfg.NamesFile = namesPath
	cfg.PrizesFile = prizesPath
	cfg.Height = 4

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader("all\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "|\n"); n != 4 {
		t.Fatalf("expected 4 ladder rows, got %d:\n%s", n, got)
	}
	for _, name := range []string{"pobi : ", "honux : ", "crong : "} {
		if !strings.Contains(got, name) {
			t.Fatalf("expected %q in output, got:\n%s", name, got)
		}
	}
}

func TestRunRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("pobi,pobi\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := testConfig()
	cfg.NamesFile = path

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out); !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}
