package inode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions controls how a counted tree is displayed. MaxDepth
// truncates display only; every printed count is still aggregated over
// the node's entire subtree.
type RenderOptions struct {
	// MaxDepth is the number of levels below the root to print (0 = root only).
	MaxDepth int
	// ShowPercent appends each node's share of the root total.
	ShowPercent bool
	// Color renders names and counts with emphasis. It has no effect on
	// counts or structure.
	Color bool
}

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// styles groups the lipgloss styles applied to the parts of a line.
type styles struct {
	name    lipgloss.Style
	count   lipgloss.Style
	percent lipgloss.Style
}

func stylesFor(opts RenderOptions) styles {
	if !opts.Color {
		plain := lipgloss.NewStyle()

		return styles{name: plain, count: plain, percent: plain}
	}

	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	if opts.ShowPercent {
		name = name.Underline(true)
	}

	return styles{
		name:    name,
		count:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		percent: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Render writes the tree view of root to w, one line per node, children
// in stored (name-sorted) order.
func Render(w io.Writer, root *TreeNode, opts RenderOptions) error {
	st := stylesFor(opts)

	if err := writeLine(w, "", "", root, root.TotalCount, opts, st); err != nil {
		return err
	}

	return renderChildren(w, "", root, root.TotalCount, 1, opts, st)
}

func renderChildren(w io.Writer, prefix string, node *TreeNode, rootTotal, depth int, opts RenderOptions, st styles) error {
	if depth > opts.MaxDepth {
		return nil
	}

	for i, child := range node.Children {
		connector, padding := treeBranchConnector, treeBranchPadding
		if i == len(node.Children)-1 {
			connector, padding = treeLastConnector, treeLastPadding
		}

		if err := writeLine(w, prefix, connector, child, rootTotal, opts, st); err != nil {
			return err
		}

		if err := renderChildren(w, prefix+padding, child, rootTotal, depth+1, opts, st); err != nil {
			return err
		}
	}

	return nil
}

// writeLine prints one node: ancestor continuation, connector, name, the
// full subtree count, and optionally the node's share of the root total.
func writeLine(w io.Writer, prefix, connector string, node *TreeNode, rootTotal int, opts RenderOptions, st styles) error {
	line := prefix + connector + st.name.Render(node.Name) + " " + st.count.Render(strconv.Itoa(node.TotalCount))

	if opts.ShowPercent {
		percent := fmt.Sprintf("%d%%", percentOf(node.TotalCount, rootTotal))
		line += " (" + st.percent.Render(percent) + ")"
	}

	_, err := fmt.Fprintln(w, line)

	return err
}

// percentOf rounds count's share of total to the nearest integer percentage.
func percentOf(count, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(float64(count) / float64(total) * 100))
}
