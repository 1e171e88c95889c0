/*
Package ordered offers ordered maps and sets with order statistics.

Ordered Containers

Map and Set keep their keys sorted by a comparator. Besides lookup, insertion
and removal in O(log n) they answer positional queries: the rank of a key is
the number of smaller keys, and Select finds the key at a given position.
Iteration always proceeds in ascending key order.

	m := ordered.NewMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	for k, v := range m.All() {
		fmt.Println(k, v) // a 1, then b 2
	}
	k := m.Select(1) // "b"

Keys of types with a natural order (cmp.Ordered) are handled by NewMap and
NewSet. Everything else needs a comparator from package order, passed to
NewMapFunc or NewSetFunc. The zero value of Map and Set is an empty container
which discovers the natural order of its keys at runtime and fails for keys
without one.

Comparators may fail. A failing comparator aborts the operation which called
it, before the container is modified, and the error is returned to the
client.

Both containers are front ends for the tree engine in package llrb. Indices
returned by Start, End and Find are llrb.Index values and may be used to step
through the container in both directions.

Containers are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

// ContainerError is an error type for the ordered module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrUnsupportedKey is flagged whenever a key cannot be encoded to or decoded
// from a textual map key.
const ErrUnsupportedKey = ContainerError("key type not supported for encoding")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")
