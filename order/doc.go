/*
Package order provides comparators for ordered containers.

A Comparator reports the relative order of two keys as a negative, zero or
positive integer, and may fail. Failing comparators are useful for keys which
are only partially comparable, e.g. values discovered at runtime, or for
orderings backed by external collation data.

Containers built on package llrb call comparators only from non-mutating
searches. A comparator failure therefore aborts an operation before the
container is modified.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package order

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
