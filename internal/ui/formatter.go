package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"flist/internal/domain"
)

// Formatter prints file lists and generation summaries to the console
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// PrintSummary prints a table describing a completed generation
func (f *Formatter) PrintSummary(result *domain.Result) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                      File List Generated                      ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	rows := [][2]string{
		{"Files", fmt.Sprintf("%d", len(result.Files))},
		{"Type", result.Format.String()},
		{"Output", result.OutputFile},
		{"Size", fmt.Sprintf("%d bytes", result.Bytes)},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row[0])
		white.Fprintf(f.out, "%-27s │\n", row[1])
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	if len(result.Files) == 0 {
		yellow.Fprintln(f.out, "! No files matched, the output lists nothing")
		return
	}
	green.Fprintf(f.out, "✓ Wrote %d file(s) to %s\n", len(result.Files), result.OutputFile)
}

// PrintFileList prints matched files, either flat in walk order or as a
// directory tree
func (f *Formatter) PrintFileList(files []string, tree bool) {
	if len(files) == 0 {
		yellow.Fprintln(f.out, "No files matched")
		return
	}

	green.Fprintf(f.out, "Found %d file(s):\n\n", len(files))

	if tree {
		f.printTree(files)
		return
	}

	for i, file := range files {
		if i == len(files)-1 {
			cyan.Fprintf(f.out, "└── %s\n", file)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", file)
		}
	}
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	IsFile   bool
}

// BuildTree groups "/"-separated paths into a directory tree
func BuildTree(files []string) *TreeNode {
	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for _, file := range files {
		parts := strings.Split(strings.TrimPrefix(file, "/"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
		}
	}

	return root
}

func (f *Formatter) printTree(files []string) {
	f.printTreeNode(BuildTree(files), "")
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	// Sort children for consistent output
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLast := i == len(keys)-1

		connector, childPrefix := "├── ", "│   "
		if isLast {
			connector, childPrefix = "└── ", "    "
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
		} else {
			cyan.Fprintf(f.out, "%s%s%s/\n", prefix, connector, child.Name)
		}

		f.printTreeNode(child, prefix+childPrefix)
	}
}
