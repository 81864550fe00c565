// Command smoketest runs the analyzer over every *.txt file under a
// directory and reports how many words parse, the most frequent words that
// do not, and how long it took.
//
//	smoketest [-config analyzer.yaml] [-workers 4] [-top 20] [-v] <dir>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/analyzer"
	"github.com/az-ai-labs/turkmorph/internal/logutil"
	"github.com/az-ai-labs/turkmorph/lexicon"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	bytesToMBShift = 20
)

func main() {
	configPath := flag.String("config", "", "analyzer YAML config (default: built-in)")
	workers := flag.Int("workers", 4, "files processed in parallel")
	top := flag.Int("top", 20, "number of unparsed words to list")
	verbose := flag.Bool("v", false, "log parser debug output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	logutil.DisableColors(!isTerminal(os.Stderr))
	if flag.NArg() != 1 || *workers < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *workers, *top, *verbose, os.Stdout); err != nil {
		logutil.LogError(err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(dir, configPath string, workers, top int, verbose bool, out io.Writer) error {
	cfg := analyzer.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = analyzer.LoadConfig(configPath); err != nil {
			return err
		}
	}

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	a, err := analyzer.New(cfg, lexicon.Sample(), logger)
	if err != nil {
		return err
	}

	paths, err := findFiles(dir)
	if err != nil {
		return err
	}
	logutil.LogGoodf("found %d files to process", len(paths))
	start := time.Now()

	stats := newStats()
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, path := range paths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			fs, err := processFile(path, a)
			if err != nil {
				logutil.LogError(err)
				return
			}
			stats.merge(fs)
		})
	}
	wg.Wait()

	logutil.LogGoodf("completed in %s", time.Since(start).Round(time.Millisecond))
	stats.print(out, top, a.CacheLen())
	return nil
}

func findFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", dir)
	}
	return paths, nil
}

// processFile reads path in newline-aligned chunks and parses every word.
func processFile(path string, a *analyzer.Analyzer) (*fileStats, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	logutil.LogDebug("START", path, fmt.Sprintf("(%d MB)", info.Size()>>bytesToMBShift))
	fileStart := time.Now()

	fs := newFileStats(path)
	buf := make([]byte, chunkSize)
	var leftover []byte
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover
			if readErr == nil {
				idx := bytes.LastIndexByte(chunk, '\n')
				if idx < 0 {
					continue
				}
				leftover = bytes.Clone(chunk[idx+1:])
				chunk = chunk[:idx+1]
			} else {
				leftover = nil
			}
			if err := fs.processChunk(string(chunk), a); err != nil {
				return nil, errors.Wrapf(err, "parsing %s", path)
			}
		}
		if readErr != nil {
			if readErr != io.EOF {
				return nil, errors.Wrapf(readErr, "reading %s", path)
			}
			break
		}
	}
	if len(leftover) > 0 {
		if err := fs.processChunk(string(leftover), a); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	}

	logutil.LogDebug("DONE ", filepath.Base(path), "in", time.Since(fileStart).Round(time.Millisecond))
	return fs, nil
}
