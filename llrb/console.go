package llrb

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	fcolor "github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var setupGraphemes sync.Once

// Tree2Console prints a tree sideways to w, the root in the leftmost column
// and larger keys above smaller ones (for debugging purposes). Each key is
// followed by the size of its subtree. Red nodes are highlighted if w is a
// terminal.
func Tree2Console[K, V any](t *Tree[K, V], w io.Writer) {
	if t == nil || t.hib != nil || t.root == sentinel {
		io.WriteString(w, "(empty)\n")
		return
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ctx := uax11.LatinContext
	if isTerminal(w) {
		ctx = uax11.ContextFromEnvironment()
	}
	labels := make(map[uint32]string, t.count)
	widths := make(map[uint32]int, t.count)
	maxw := 0
	t.forEachSlot(t.root, func(h uint32) {
		s := fmt.Sprint(t.nodes[h].key)
		labels[h] = s
		widths[h] = uax11.StringWidth(grapheme.StringFromString(s), ctx)
		maxw = max(maxw, widths[h])
	})
	redKey := fcolor.New(fcolor.FgRed, fcolor.Bold)
	if !isTerminal(w) {
		redKey.DisableColor()
	}
	var show func(h uint32, depth int)
	show = func(h uint32, depth int) {
		if h == sentinel {
			return
		}
		n := t.nodes[h]
		show(n.right, depth+1)
		io.WriteString(w, strings.Repeat("    ", depth))
		if n.color == red {
			redKey.Fprint(w, labels[h])
		} else {
			io.WriteString(w, labels[h])
		}
		fmt.Fprintf(w, "%s [%d]\n", strings.Repeat(" ", maxw-widths[h]), n.size)
		show(n.left, depth+1)
	}
	show(t.root, 0)
}

// forEachSlot visits the arena slots of the subtree rooted at h in pre-order.
func (t *Tree[K, V]) forEachSlot(h uint32, fn func(h uint32)) {
	if h == sentinel {
		return
	}
	fn(h)
	t.forEachSlot(t.nodes[h].left, fn)
	t.forEachSlot(t.nodes[h].right, fn)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
