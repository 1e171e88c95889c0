package llrb

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Node labels show key, subtree size and arena slot.
func Tree2Dot[K, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t == nil || t.hib != nil {
		io.WriteString(w, "}\n")
		return
	}
	var nodelist, edgelist strings.Builder
	var walk func(h uint32)
	walk = func(h uint32) {
		n := t.nodes[h]
		label := fmt.Sprintf("%s\\n%d #%d", dotEscape(fmt.Sprint(n.key)), n.size, h)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", h, label, nodeDotStyles(n.color))
		for i, c := range [2]uint32{n.left, n.right} {
			if c == sentinel {
				nilid := fmt.Sprintf("nil%d_%d", h, i)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", h, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\"%s;\n", h, c, edgeDotStyles(t.nodes[c].color))
			walk(c)
		}
	}
	if t.root != sentinel {
		walk(t.root)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == red {
		return s + ",color=\"#cc0000\",fillcolor=\"#ff3333\""
	}
	return s + ",color=black,fillcolor=\"#333333\""
}

// red links are drawn in bold red
func edgeDotStyles(c color) string {
	if c == red {
		return " [color=red,penwidth=2]"
	}
	return ""
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
