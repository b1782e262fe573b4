/*
Package algebra provides some pre-manufactured algebras for lazy segment trees.

Every constructor returns a complete lazyseg.Config, ready to be passed to
lazyseg.New or lazyseg.Build:

  - SumAdd: range sum, range add
  - MaxAssign, MinAssign: range maximum/minimum, range assignment
  - MaxAdd, MinAdd: range maximum/minimum, range add
  - RightmostOverwrite: rightmost present value, range overwrite
  - AffineSum: range sum, range affine map x ↦ a·x + b

RightmostOverwrite and AffineSum are not commutative (the first in its combine
operation, the second in its update composition); they are useful to test
clients for ordering bugs.

VerifyLaws checks the monoid and homomorphism laws of a configuration for
sampled values.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package algebra

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

// Number is the set of types with + and *.
type Number interface {
	constraints.Integer | constraints.Float
}
