/*
Package lazyseg implements a generic segment tree with lazy propagation.

A segment tree answers range queries over a sequence of values, like "what is
the sum of the values at positions 3 to 17", in logarithmic time. With lazy
propagation it also performs range updates, like "add 5 to every value at
positions 3 to 17", in logarithmic time: updates are parked at the highest
nodes which cover a part of the range and are pushed further down only when a
query or another update needs to look below them.

Algebra

A tree is parameterized over two monoids and an action connecting them:

  - the combine algebra (V, ⊕, idV), which aggregates leaf values;
  - the update algebra (L, ∘, idL), which composes pending updates;
  - an Apply function, which applies an update to an aggregate.

Apply has to satisfy

	Apply(Apply(v, l1), l2) == Apply(v, l1∘l2)
	Apply(v1⊕v2, l)        == Apply(v1, l) ⊕ Apply(v2, l)

Neither ⊕ nor ∘ need to be commutative. Queries always combine leaves from
left to right, and an update always composes to the right of updates issued
earlier. Package algebra provides ready-made algebras, e.g. range sum with
range add or range maximum with range assignment, together with a checker for
the two laws.

Usage

	tree, err := lazyseg.Build(algebra.SumAdd[int](), algebra.Sizes([]int{1, 2, 3, 4, 5}))
	…
	tree.Update(1, 3, 10)         // add 10 to positions 1 and 2
	sum, err := tree.Query(0, 5)  // sum.Sum == 35

Ranges are half-open, [l, r), and are validated: a range outside of [0, Len())
is rejected with ErrInvalidRange before anything is modified. Trees with zero
leaves cannot be created (ErrInvalidSize).

A tree is not safe for concurrent use; clients sharing a tree between
goroutines have to serialize access, including queries.

Debugging

Tree2Dot writes the internal state of a tree as a Graphviz graph. Package dump
renders the same state for consoles and for HTML. Tracing goes to the tracer
selected by key "lazyseg".

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
package lazyseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}
