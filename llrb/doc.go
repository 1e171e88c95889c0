/*
Package llrb implements an augmented left-leaning red-black tree, the engine
behind the ordered map and set of package ordered.

The tree is a 2-3 tree in disguise: red links lean left and stand for the
glue inside a 3-node. Every node carries the size of its subtree, which turns
the search tree into an order-statistics tree (Rank, Select, At).

Nodes live in an arena owned by the tree and refer to each other by arena
slot. Slot 0 is the sentinel terminating every leaf edge. Children links are
owning, parent links are back-references used for stepping an Index to its
successor or predecessor.

Insert and Remove first search for the key without touching the tree. Only
after every comparison succeeded is the tree restructured, guided by subtree
sizes alone. A failing comparator therefore never leaves a half-mutated tree
behind.

Status:
  - insertion and top-down deletion with rank-guided descent,
  - order statistics (Rank, Select, At, IndexAt, Position),
  - stable indices with detection of removed nodes,
  - invariant checker (Check) for tests,
  - hibernation of idle trees (lz4 compressed link columns),
  - Graphviz and console dumps for debugging.

A tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package llrb

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// violation reports a precondition violation of a client and panics.
// Violations are programmer errors and are never recovered from.
func violation(err error, format string, args ...any) {
	e := fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	tracer().Errorf("%s", e.Error())
	panic(e)
}
