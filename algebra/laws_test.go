package algebra

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSumAddLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	values := []Sized[int]{{}, {Sum: 1, Len: 1}, {Sum: -4, Len: 1}, {Sum: 7, Len: 3}, {Sum: 0, Len: 2}}
	updates := []int{0, 1, -3, 10}
	if err := VerifyLaws(SumAdd[int](), Equal[Sized[int]], values, updates); err != nil {
		t.Fatalf("SumAdd: %v", err)
	}
}

func TestExtremaLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	values := []int{0, 1, 5, 3, 42}
	assignments := []Assignment[int]{{}, Assign(1), Assign(0), Assign(17)}
	if err := VerifyLaws(MaxAssign(0), Equal[int], values, assignments); err != nil {
		t.Errorf("MaxAssign: %v", err)
	}
	if err := VerifyLaws(MinAssign(math.MaxInt), Equal[int], values, assignments); err != nil {
		t.Errorf("MinAssign: %v", err)
	}
	deltas := []int{0, 2, -7}
	if err := VerifyLaws(MaxAdd(math.MinInt/2), Equal[int], values, deltas); err != nil {
		t.Errorf("MaxAdd: %v", err)
	}
	if err := VerifyLaws(MinAdd(math.MaxInt/2), Equal[int], values, deltas); err != nil {
		t.Errorf("MinAdd: %v", err)
	}
}

func TestNonCommutativeLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	opts := []Optional[string]{{}, Some("a"), Some("b"), Some("")}
	overwrites := []Assignment[string]{{}, Assign("x"), Assign("y")}
	if err := VerifyLaws(RightmostOverwrite[string](), Equal[Optional[string]], opts, overwrites); err != nil {
		t.Errorf("RightmostOverwrite: %v", err)
	}
	sums := Sizes([]int64{0, 3, -2, 9})
	maps := []Affine[int64]{{A: 1, B: 0}, {A: 2, B: 1}, {A: -1, B: 5}, {A: 0, B: 3}}
	if err := VerifyLaws(AffineSum[int64](), Equal[Sized[int64]], sums, maps); err != nil {
		t.Errorf("AffineSum: %v", err)
	}
}

func TestSumAddOverFilledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	tree, err := lazyseg.Fill(SumAdd[int](), 5, Sized[int]{Len: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Update(1, 4, 3); err != nil {
		t.Fatal(err)
	}
	if s, err := tree.Query(0, 5); err != nil || s.Sum != 9 || s.Len != 5 {
		t.Errorf("expected sum 9 over 5 leaves, got %+v, %v", s, err)
	}
	affine, err := lazyseg.Build(AffineSum[int](), Sizes(make([]int, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if err := affine.Update(0, 4, Affine[int]{A: 1, B: 2}); err != nil {
		t.Fatal(err)
	}
	if s, err := affine.Query(0, 4); err != nil || s.Sum != 8 {
		t.Errorf("expected sum 8, got %+v, %v", s, err)
	}
}

func TestAffineCompositionOrder(t *testing.T) {
	aff := Affinity[int]{}
	double, inc := Affine[int]{A: 2}, Affine[int]{A: 1, B: 1}
	v := Sized[int]{Sum: 5, Len: 1}
	if got := aff.Apply(v, aff.Add(double, inc)); got.Sum != 11 {
		t.Errorf("double then increment: got %d, want 11", got.Sum)
	}
	if got := aff.Apply(v, aff.Add(inc, double)); got.Sum != 12 {
		t.Errorf("increment then double: got %d, want 12", got.Sum)
	}
}

func TestRightmostIsNotCommutative(t *testing.T) {
	r := Rightmost[int]{}
	if got := r.Add(Some(1), Some(2)); got.Value != 2 {
		t.Errorf("expected right operand to win, got %v", got)
	}
	if got := r.Add(Some(1), Optional[int]{}); got.Value != 1 {
		t.Errorf("expected absent right operand to be skipped, got %v", got)
	}
}

// Assigning to a sum without knowing its length is the classic mistake.
type naiveAssign struct{ Assigning[int] }

func (naiveAssign) Apply(v Sized[int], a Assignment[int]) Sized[int] {
	if a.Set {
		return Sized[int]{Sum: a.Value, Len: v.Len}
	}
	return v
}

func TestVerifyLawsDetectsViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	broken := lazyseg.Config[Sized[int], Assignment[int]]{
		Combine: Summation[int]{},
		Update:  naiveAssign{},
	}
	values := Sizes([]int{1, 2})
	err := VerifyLaws(broken, Equal[Sized[int]], values, []Assignment[int]{Assign(3)})
	if !errors.Is(err, ErrLawViolation) {
		t.Fatalf("expected ErrLawViolation, got %v", err)
	}
	t.Logf("detected: %v", err)
}

func TestVerifyLawsRejectsIncompleteConfig(t *testing.T) {
	err := VerifyLaws(lazyseg.Config[int, int]{}, Equal[int], nil, nil)
	if !errors.Is(err, lazyseg.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
