package dsarray

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/dsarray/sbt"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// DumpOptions control the console rendering of Dump.
type DumpOptions struct {
	Color    bool           // colorize subtree sizes by depth
	MaxWidth int            // max display width of a rendered element, in ‘en’s
	Context  *uax11.Context // context for display width calculation
}

// DumpOptionsFromTerminal is a simple helper for creating dump options.
// It checks whether stdout is a terminal, and if so it enables colors and
// limits rendered elements to a fraction of the terminal's width.
func DumpOptionsFromTerminal() *DumpOptions {
	opts := &DumpOptions{MaxWidth: 40}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		opts.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			opts.MaxWidth = w / 2
		}
	}
	opts.Context = uax11.ContextFromEnvironment()
	tracer().Debugf("dump options: color=%v, width=%d", opts.Color, opts.MaxWidth)
	return opts
}

var depthPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgCyan),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
}

var setupGraphemes sync.Once

// Dump writes the tree structure of an array to w, one node per line, for
// debugging purposes. Each node shows its subtree size and its element;
// empty children of inner nodes are shown as ◌.
//
// If opts is nil, options are derived from the current terminal.
func Dump[T any](a *Array[T], w io.Writer, opts *DumpOptions) error {
	if a == nil || w == nil {
		return ErrIllegalArguments
	}
	if opts == nil {
		opts = DumpOptionsFromTerminal()
	}
	if opts.Context == nil {
		opts.Context = uax11.LatinContext
	}
	root := a.t().Root()
	if root.IsEmpty() {
		_, err := io.WriteString(w, "◌\n")
		return err
	}
	tree := treeprint.NewWithRoot(dumpLabel(root, 0, opts))
	dumpChildren(tree, root, 1, opts)
	_, err := io.WriteString(w, tree.String())
	return err
}

func dumpChildren[T any](tree treeprint.Tree, node *sbt.Node[T], depth int, opts *DumpOptions) {
	if node.IsLeaf() {
		return
	}
	for _, child := range []*sbt.Node[T]{node.Left(), node.Right()} {
		if child.IsEmpty() {
			tree.AddNode("◌")
			continue
		}
		if child.IsLeaf() {
			tree.AddNode(dumpLabel(child, depth, opts))
			continue
		}
		branch := tree.AddBranch(dumpLabel(child, depth, opts))
		dumpChildren(branch, child, depth+1, opts)
	}
}

func dumpLabel[T any](node *sbt.Node[T], depth int, opts *DumpOptions) string {
	size := fmt.Sprintf("#%d", node.Size())
	if opts.Color {
		size = depthPalette[depth%len(depthPalette)].Sprint(size)
	}
	return size + " " + truncate(fmt.Sprint(node.Value()), opts.MaxWidth, opts.Context)
}

// truncate shortens s to at most width display positions, marking the cut
// with an ellipsis. A width <= 0 means no limit.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 || displayWidth(s, context) <= width {
		return s
	}
	runes := []rune(s)
	cut := 0
	for cut < len(runes) && displayWidth(string(runes[:cut+1]), context) < width {
		cut++
	}
	return string(runes[:cut]) + "…"
}

func displayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
