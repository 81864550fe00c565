package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/az-ai-labs/turkmorph/analyzer"
	"github.com/az-ai-labs/turkmorph/internal/logutil"
)

func quiet(t *testing.T) {
	t.Helper()
	prev := logutil.SetOutput(io.Discard)
	t.Cleanup(func() { logutil.SetOutput(prev) })
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Kitaplar kapıya, zzqx zzqx.\n")
	writeFile(t, dir, "sub/b.txt", "Ali'ye 3'te geldim qqq")
	writeFile(t, dir, "ignored.md", "zzqx zzqx zzqx")

	var out bytes.Buffer
	if err := run(dir, "", 2, 5, false, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Files scanned:           2\n",
		"Words:                   8\n",
		"Reconstruction FAIL:     0\n",
		"Top unparsed words:\n",
		"  zzqx                 2\n",
		"  qqq                  1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunConfig(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Ali'ye kitap\n")
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(cfgPath, []byte("grammar: [basic]\nroot_finders: [word]\ncache: {kind: none}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(dir, cfgPath, 1, 5, false, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Parsed:                  1  (50.0%)", "Cached words:            0", "  Ali'ye"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunErrors(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	if err := run(filepath.Join(t.TempDir(), "missing"), "", 1, 5, false, &out); err == nil {
		t.Error("run on missing directory returned nil error")
	}
	if err := run(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"), 1, 5, false, &out); err == nil {
		t.Error("run with missing config returned nil error")
	}
}

func TestProcessFileChunkBoundary(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	line := strings.Repeat("kitap ", 1000) + "\n"
	lines := chunkSize/len(line) + 2
	writeFile(t, dir, "big.txt", strings.Repeat(line, lines))

	a, err := analyzer.Default()
	if err != nil {
		t.Fatal(err)
	}
	fs, err := processFile(filepath.Join(dir, "big.txt"), a)
	if err != nil {
		t.Fatalf("processFile: %v", err)
	}
	if want := 1000 * lines; fs.words != want || fs.parsed != want {
		t.Errorf("words=%d parsed=%d, want %d each", fs.words, fs.parsed, want)
	}
	if fs.reconFailed {
		t.Error("reconstruction failed")
	}
}

func TestTopUnparsed(t *testing.T) {
	s := newStats()
	s.merge(&fileStats{unparsed: map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}})
	s.merge(&fileStats{unparsed: map[string]int{"d": 3}})

	want := []wordCount{{"c", 5}, {"d", 4}, {"a", 2}}
	if diff := cmp.Diff(want, s.topUnparsed(3), cmp.AllowUnexported(wordCount{})); diff != "" {
		t.Errorf("topUnparsed mismatch (-want +got):\n%s", diff)
	}
	if got := len(s.topUnparsed(10)); got != 4 {
		t.Errorf("len(topUnparsed(10)) = %d, want 4", got)
	}
}

func TestFirstDivergence(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		reconstructed string
		wantPos       int
		wantGot       byte
		wantWant      byte
	}{
		{"equal", "abc", "abc", 3, 0, 0},
		{"middle", "abc", "abd", 2, 'd', 'c'},
		{"shorter", "abc", "ab", 2, 0, 'c'},
		{"longer", "ab", "abc", 2, 'c', 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, got, want := firstDivergence(tt.original, tt.reconstructed)
			if pos != tt.wantPos || got != tt.wantGot || want != tt.wantWant {
				t.Errorf("firstDivergence = (%d, %#x, %#x), want (%d, %#x, %#x)",
					pos, got, want, tt.wantPos, tt.wantGot, tt.wantWant)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if isTerminal(f) {
		t.Error("isTerminal(regular file) = true")
	}
}
