// Package generator produces a file list: it scans a base directory,
// renders the matched paths in the requested format and writes the result
// to the output file.
package generator

import (
	"fmt"
	"path/filepath"

	"flist/internal/discovery"
	"flist/internal/domain"
	"flist/internal/render"
	"flist/internal/storage"
)

// Logger receives progress messages
type Logger interface {
	LogInfo(message string)
	LogDebug(message string)
}

// Progress observes the files visited by a scan
type Progress interface {
	Visit(path string)
	Finish()
}

// Generator runs one scan, one render and one write per call
type Generator struct {
	scanner  *discovery.Scanner
	storage  storage.Storage
	logger   Logger
	progress Progress
}

// New creates a Generator
func New(scanner *discovery.Scanner, st storage.Storage, logger Logger) *Generator {
	return &Generator{
		scanner: scanner,
		storage: st,
		logger:  logger,
	}
}

// WithProgress reports scan progress to p
func (g *Generator) WithProgress(p Progress) *Generator {
	g.progress = p
	return g
}

// Generate writes the files selected by req to outputFile in format.
// Errors are *domain.ConfigurationError or *domain.IOError.
func (g *Generator) Generate(req domain.ScanRequest, format domain.Format, suite domain.Suite, outputFile string) (*domain.Result, error) {
	g.logger.LogInfo("Creating file list")
	g.logger.LogInfo("Basedir:    " + req.BaseDir)
	g.logger.LogInfo("Output:     " + outputFile)
	g.logger.LogInfo(fmt.Sprintf("Includes:   %v", req.Includes))
	g.logger.LogInfo(fmt.Sprintf("Excludes:   %v", req.Excludes))
	g.logger.LogInfo("Type:       " + format.String())
	g.logger.LogInfo(fmt.Sprintf("Include /:  %t", req.PrefixWithSlash))

	renderer, err := render.For(format, suite)
	if err != nil {
		return nil, err
	}

	matched, err := g.scan(req)
	if err != nil {
		return nil, err
	}
	g.logger.LogInfo(fmt.Sprintf("File list contains %d files", len(matched)))

	files := Prepare(matched, req.PrefixWithSlash)

	content, err := renderer.Render(files)
	if err != nil {
		return nil, err
	}

	if err := g.storage.Write(outputFile, content); err != nil {
		return nil, err
	}
	g.logger.LogDebug(fmt.Sprintf("Wrote %d bytes to %s", len(content), outputFile))

	return &domain.Result{
		Files:      files,
		Format:     format,
		OutputFile: outputFile,
		Bytes:      len(content),
	}, nil
}

func (g *Generator) scan(req domain.ScanRequest) ([]string, error) {
	if g.progress == nil {
		return g.scanner.Scan(req)
	}

	g.scanner.OnVisit(g.progress.Visit)
	defer func() {
		g.scanner.OnVisit(nil)
		g.progress.Finish()
	}()
	return g.scanner.Scan(req)
}

// Prepare converts matched "/"-separated paths to host paths, prefixing
// each with "/" when prefix is set
func Prepare(matched []string, prefix bool) []string {
	files := make([]string, len(matched))
	for i, rel := range matched {
		p := filepath.FromSlash(rel)
		if prefix {
			p = "/" + p
		}
		files[i] = p
	}
	return files
}
