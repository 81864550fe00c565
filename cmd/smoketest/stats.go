package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/az-ai-labs/turkmorph/analyzer"
	"github.com/az-ai-labs/turkmorph/internal/logutil"
	"github.com/az-ai-labs/turkmorph/tokenizer"
)

// fileStats is filled by one worker and merged into stats when the file
// is done.
type fileStats struct {
	path        string
	bytes       int64
	words       int
	parsed      int
	analyses    int
	unparsed    map[string]int
	reconFailed bool
}

func newFileStats(path string) *fileStats {
	return &fileStats{path: path, unparsed: make(map[string]int)}
}

func (fs *fileStats) processChunk(text string, a *analyzer.Analyzer) error {
	fs.bytes += int64(len(text))

	tokens := tokenizer.Tokens(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
		if tok.Type != tokenizer.Word && tok.Type != tokenizer.Number {
			continue
		}
		results, err := a.Parse(tok.Text)
		if err != nil {
			return err
		}
		fs.words++
		if len(results) == 0 {
			fs.unparsed[tok.Text]++
			continue
		}
		fs.parsed++
		fs.analyses += len(results)
	}

	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		pos, got, want := firstDivergence(text, sb.String())
		logutil.LogWarnf("RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)", fs.path, pos, got, want)
	}
	return nil
}

// stats aggregates every file.
type stats struct {
	mu        sync.Mutex
	files     int
	bytes     int64
	words     int
	parsed    int
	analyses  int
	reconFail int
	unparsed  map[string]int
}

func newStats() *stats {
	return &stats{unparsed: make(map[string]int)}
}

func (s *stats) merge(fs *fileStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files++
	s.bytes += fs.bytes
	s.words += fs.words
	s.parsed += fs.parsed
	s.analyses += fs.analyses
	if fs.reconFailed {
		s.reconFail++
	}
	for w, n := range fs.unparsed {
		s.unparsed[w] += n
	}
}

type wordCount struct {
	word  string
	count int
}

// topUnparsed returns the n most frequent unparsed words, ties broken
// alphabetically.
func (s *stats) topUnparsed(n int) []wordCount {
	out := make([]wordCount, 0, len(s.unparsed))
	for w, c := range s.unparsed {
		out = append(out, wordCount{w, c})
	}
	slices.SortFunc(out, func(a, b wordCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return strings.Compare(a.word, b.word)
	})
	return out[:min(n, len(out))]
}

func (s *stats) print(w io.Writer, top, cached int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(w, "Files scanned:           %d\n", s.files)
	fmt.Fprintf(w, "Total bytes:             %d\n", s.bytes)
	fmt.Fprintf(w, "Reconstruction FAIL:     %d\n", s.reconFail)
	fmt.Fprintf(w, "Words:                   %d\n", s.words)
	fmt.Fprintf(w, "Parsed:                  %d  (%.1f%%)\n", s.parsed, percent(s.parsed, s.words))
	fmt.Fprintf(w, "Unparsed:                %d  (%.1f%%)\n", s.words-s.parsed, percent(s.words-s.parsed, s.words))
	fmt.Fprintf(w, "Analyses per word:       %.2f\n", ratio(s.analyses, s.parsed))
	fmt.Fprintf(w, "Distinct unparsed:       %d\n", len(s.unparsed))
	fmt.Fprintf(w, "Cached words:            %d\n", cached)

	if top <= 0 || len(s.unparsed) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top unparsed words:")
	for _, wc := range s.topUnparsed(top) {
		fmt.Fprintf(w, "  %-20s %d\n", wc.word, wc.count)
	}
}

func percent(n, total int) float64 {
	return ratio(n, total) * 100
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}
