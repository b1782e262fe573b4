// Command projects selects projects with dependencies for a maximum profit.
//
// Input is read from stdin:
//
//	N W
//	A_1 … A_N
//	K_1 c_1,1 … c_1,K_1
//	…
//	K_N c_N,1 … c_N,K_N
//
// Project i earns A_i and costs W. The K_i projects c_i,j (1-based) depend on
// project i: they may only be chosen if project i is chosen as well. Output is
// the maximum profit.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/lazyseg/internal/cli"
	"github.com/npillmayer/lazyseg/maxflow"
)

func main() {
	os.Exit(cli.Run("projects", os.Args[1:], os.Stdin, os.Stdout, os.Stderr, solve))
}

func solve(env *cli.Env) error {
	n, err := env.In.Count()
	if err != nil {
		return err
	}
	cost, err := env.In.Int64()
	if err != nil {
		return err
	}
	rewards := make([]int64, n)
	for i := range rewards {
		if rewards[i], err = env.In.Int64(); err != nil {
			return err
		}
	}
	requires := make([][]int, n)
	for i := range requires {
		k, err := env.In.Count()
		if err != nil {
			return err
		}
		deps, err := env.In.Ints(k)
		if err != nil {
			return err
		}
		for j := range deps {
			if deps[j] < 1 || deps[j] > n {
				return fmt.Errorf("%w: project %d needs unknown project %d",
					cli.ErrMalformedInput, i+1, deps[j])
			}
			deps[j]--
		}
		requires[i] = deps
	}
	sel, err := maxflow.ProjectSelection(rewards, cost, requires)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, sel.Profit)
	return nil
}
