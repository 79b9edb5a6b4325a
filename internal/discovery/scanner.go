package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"flist/internal/domain"
)

// Scanner walks a base directory and collects the files selected by a
// ScanRequest
type Scanner struct {
	onVisit func(path string)
}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// OnVisit registers a callback invoked for every file the walk reaches,
// matched or not
func (s *Scanner) OnVisit(fn func(path string)) {
	s.onVisit = fn
}

// Scan returns the "/"-separated paths, relative to req.BaseDir, of every
// file selected by the request. Paths are in walk order.
func (s *Scanner) Scan(req domain.ScanRequest) ([]string, error) {
	matcher, err := NewMatcher(req.Includes, req.Excludes, req.CaseSensitive)
	if err != nil {
		return nil, err
	}

	// Clean and validate the root path
	root := filepath.Clean(req.BaseDir)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Field: "base directory",
			Err:   fmt.Errorf("%s does not exist", root),
		}
	}
	if !info.IsDir() {
		return nil, &domain.ConfigurationError{
			Field: "base directory",
			Err:   fmt.Errorf("%s is not a directory", root),
		}
	}

	files := []string{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable entries are left out, like a directory listing would
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil || target.IsDir() {
				return nil
			}
		}

		if s.onVisit != nil {
			s.onVisit(path)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matcher.Match(rel) {
			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, &domain.IOError{Op: "scan", Path: root, Err: err}
	}

	return files, nil
}
