// Package scan collects utility class candidates from content files.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// File describes a single content file selected for scanning.
type File struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Scanner walks content roots and extracts class candidates from files.
type Scanner struct {
	exts map[string]struct{}
	log  *zap.Logger
}

// NewScanner creates scanner for files with requested extensions.
func NewScanner(extensions []string, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}
	return &Scanner{exts: exts, log: log.Named("scanner")}
}

// Files walks all roots and returns matching files in stable order, so
// repeated runs over the same tree always produce the same sequence.
func (s *Scanner) Files(roots []string) ([]File, error) {

	var (
		files []File
		seen  = make(map[string]struct{})
	)

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				if strings.HasPrefix(name, ".") || name == "node_modules" {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := s.exts[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}
			if _, dup := seen[path]; dup {
				// roots may overlap
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			seen[path] = struct{}{}
			files = append(files, File{Path: path, Size: info.Size(), ModTime: info.ModTime()})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning content root %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i].Path, files[j].Path)
	})

	s.log.Debug("Collected content files", zap.Int("count", len(files)))
	return files, nil
}

// ExtractFile reads a file and extracts class candidates from it.
func (s *Scanner) ExtractFile(f File) ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	classes := s.Extract(f.Path, data)
	s.log.Debug("Scanned file", zap.String("file", f.Path), zap.Int("candidates", len(classes)))
	return classes, nil
}

// Collect runs extract over files concurrently and merges results into a
// single candidate list, unique and ordered by first appearance.
func (s *Scanner) Collect(ctx context.Context, files []File, extract func(File) ([]string, error)) ([]string, error) {

	if len(files) == 0 {
		return nil, nil
	}

	results := make([][]string, len(files))
	failures := make([]error, len(files))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}

	indexes := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					failures[i] = ctx.Err()
					continue
				}
				results[i], failures[i] = extract(files[i])
			}
		}()
	}

feed:
	for i := range files {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	var err error
	for i, e := range failures {
		if e != nil && !errors.Is(e, context.Canceled) {
			err = multierr.Append(err, fmt.Errorf("%s: %w", files[i].Path, e))
		}
	}
	if cerr := ctx.Err(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if err != nil {
		return nil, err
	}

	// merge in file order, keep first appearance
	var (
		classes []string
		seen    = make(map[string]struct{})
	)
	for _, rs := range results {
		for _, c := range rs {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			classes = append(classes, c)
		}
	}

	s.log.Debug("Merged scan results", zap.Int("files", len(files)), zap.Int("candidates", len(classes)))
	return classes, nil
}
