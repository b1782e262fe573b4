package algebra

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lazyseg"
)

// ErrLawViolation signals that an algebra breaks one of the monoid or
// homomorphism laws for some sampled values.
var ErrLawViolation = errors.New("algebra: law violated")

// Equal is an equality for comparable aggregate values, to be used with
// VerifyLaws or lazyseg.Tree.Check.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// VerifyLaws checks the laws a lazy segment tree relies on, for all
// combinations of the sampled values and updates:
//
//	Combine:  Zero is neutral, Add is associative
//	Update:   Zero is neutral, Add is associative, Apply(v, Zero) == v
//	Composition:    Apply(Apply(v, l1), l2) == Apply(v, Add(l1, l2))
//	Distributivity: Apply(v1⊕v2, l) == Apply(v1, l) ⊕ Apply(v2, l)
//
// eq compares aggregates. The first violation found is returned, wrapping
// ErrLawViolation. Sampling cannot prove an algebra correct, of course.
func VerifyLaws[V any, L comparable](cfg lazyseg.Config[V, L], eq func(a, b V) bool,
	values []V, updates []L) error {
	//
	if cfg.Combine == nil || cfg.Update == nil {
		return fmt.Errorf("%w: incomplete configuration", lazyseg.ErrInvalidConfig)
	}
	combine, update := cfg.Combine, cfg.Update
	zero, none := combine.Zero(), update.Zero()
	for _, v := range values {
		if !eq(combine.Add(zero, v), v) || !eq(combine.Add(v, zero), v) {
			return violation("combine identity", v)
		}
		if !eq(update.Apply(v, none), v) {
			return violation("update identity", v)
		}
		for _, w := range values {
			for _, x := range values {
				if !eq(combine.Add(combine.Add(v, w), x), combine.Add(v, combine.Add(w, x))) {
					return violation("combine associativity", v, w, x)
				}
			}
		}
	}
	for _, l := range updates {
		if update.Add(none, l) != l || update.Add(l, none) != l {
			return violation("update identity", l)
		}
		for _, m := range updates {
			for _, n := range updates {
				if update.Add(update.Add(l, m), n) != update.Add(l, update.Add(m, n)) {
					return violation("update associativity", l, m, n)
				}
			}
			for _, v := range values {
				if !eq(update.Apply(update.Apply(v, l), m), update.Apply(v, update.Add(l, m))) {
					return violation("composition", v, l, m)
				}
			}
		}
		for _, v := range values {
			for _, w := range values {
				lhs := update.Apply(combine.Add(v, w), l)
				rhs := combine.Add(update.Apply(v, l), update.Apply(w, l))
				if !eq(lhs, rhs) {
					return violation("distributivity", v, w, l)
				}
			}
		}
	}
	tracer().Debugf("algebra: laws hold for %d values and %d updates", len(values), len(updates))
	return nil
}

func violation(law string, samples ...interface{}) error {
	tracer().Infof("algebra: %s violated for %v", law, samples)
	return fmt.Errorf("%w: %s for %v", ErrLawViolation, law, samples)
}
