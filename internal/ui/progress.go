package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ScanProgress shows a spinner counting the files visited by a scan
type ScanProgress struct {
	bar *progressbar.ProgressBar
}

// NewScanProgress creates a spinner writing to w. The total is unknown
// until the walk finishes.
func NewScanProgress(w io.Writer) *ScanProgress {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString("Scanning files")),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)

	return &ScanProgress{bar: bar}
}

// Visit counts one visited file
func (p *ScanProgress) Visit(string) {
	_ = p.bar.Add(1)
}

// Finish completes the spinner
func (p *ScanProgress) Finish() {
	_ = p.bar.Finish()
}
