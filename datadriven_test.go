package lazyseg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestDataDriven runs the scripts in testdata/ against a tree of range sums
// with range affine maps. Commands:
//
//	build values=(v1, v2, …)
//	new n=<leaves>        (all leaves 0, of length 1)
//	query l=<l> r=<r>
//	update l=<l> r=<r> [mul=<a>] [add=<b>]
//	values
//	check
func TestDataDriven(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	var tree *Tree[span, affine]
	datadriven.RunTest(t, "testdata/tree", func(t *testing.T, d *datadriven.TestData) string {
		var err error
		switch d.Cmd {
		case "build":
			var values []int
			d.ScanArgs(t, "values", &values)
			leaves := make([]int64, len(values))
			for i, v := range values {
				leaves[i] = int64(v)
			}
			if tree, err = Build(sumAffine(), spans(leaves...)); err != nil {
				return "error: " + err.Error()
			}
			return fmt.Sprintf("n=%d size=%d height=%d", tree.Len(), tree.Size(), tree.Height())
		case "new":
			var n int
			d.ScanArgs(t, "n", &n)
			if tree, err = Fill(sumAffine(), n, span{n: 1}); err != nil {
				return "error: " + err.Error()
			}
			return fmt.Sprintf("n=%d size=%d height=%d", tree.Len(), tree.Size(), tree.Height())
		case "query":
			var l, r int
			d.ScanArgs(t, "l", &l)
			d.ScanArgs(t, "r", &r)
			v, err := tree.Query(l, r)
			if err != nil {
				return "error: " + err.Error()
			}
			return fmt.Sprintf("sum=%d len=%d", v.sum, v.n)
		case "update":
			var l, r int
			d.ScanArgs(t, "l", &l)
			d.ScanArgs(t, "r", &r)
			f := affine{a: 1}
			d.MaybeScanArgs(t, "mul", &f.a)
			d.MaybeScanArgs(t, "add", &f.b)
			if err := tree.Update(l, r, f); err != nil {
				return "error: " + err.Error()
			}
			return "ok"
		case "values":
			var b strings.Builder
			for i, v := range tree.Values() {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%d", v.sum)
			}
			return b.String()
		case "check":
			if err := tree.Check(spanEq); err != nil {
				return "error: " + err.Error()
			}
			return "ok"
		default:
			d.Fatalf(t, "unknown command: %s", d.Cmd)
			return ""
		}
	})
}
