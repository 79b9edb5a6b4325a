package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"flist/internal/render"
)

// Browser displays matched files in an interactive TUI
type Browser struct {
	baseDir string
	files   []string
}

// NewBrowser creates a Browser over files, given relative to baseDir
func NewBrowser(baseDir string, files []string) *Browser {
	return &Browser{baseDir: baseDir, files: files}
}

// Run shows the browser until the user quits
func (b *Browser) Run() error {
	if len(b.files) == 0 {
		yellow.Println("No files matched")
		return nil
	}

	app := tview.NewApplication()

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Details ")

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Files (%d) ", len(b.files)))

	for _, file := range b.files {
		list.AddItem(tview.Escape(file), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		details.SetText(b.Describe(index))
		details.ScrollToBeginning()
	})
	details.SetText(b.Describe(0))

	footer := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]↑/↓[white] move   [yellow]q/Esc[white] quit")

	body := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(footer, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(layout, true).EnableMouse(true).Run()
}

// Describe returns the details pane text for the file at index
func (b *Browser) Describe(index int) string {
	if index < 0 || index >= len(b.files) {
		return ""
	}

	rel := b.files[index]
	full := filepath.Join(b.baseDir, filepath.FromSlash(rel))

	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]Path:[white]   %s\n", tview.Escape(rel))
	fmt.Fprintf(&sb, "[yellow]Full:[white]   %s\n", tview.Escape(full))

	info, err := os.Stat(full)
	if err != nil {
		fmt.Fprintf(&sb, "[red]%s[white]\n", tview.Escape(err.Error()))
	} else {
		fmt.Fprintf(&sb, "[yellow]Size:[white]   %d bytes\n", info.Size())
		fmt.Fprintf(&sb, "[yellow]Mod:[white]    %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(&sb, "[yellow]Suite:[white]  %s\n", tview.Escape(render.ClassReference(rel)))

	return sb.String()
}
