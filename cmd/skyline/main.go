// Command skyline drops blocks onto a row of columns and prints the height at
// which each block comes to rest.
//
// Input is read from stdin:
//
//	W N
//	L_1 R_1
//	…
//	L_N R_N
//
// where W is the number of columns and block i covers the columns L_i to R_i
// (1-based, inclusive). Output is one height per block.
//
// Flags -trace and -dump control tracing and a dump of the final tree to
// stderr.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/lazyseg/internal/cli"
	"github.com/npillmayer/lazyseg/skyline"
)

func main() {
	os.Exit(cli.Run("skyline", os.Args[1:], os.Stdin, os.Stdout, os.Stderr, solve))
}

func solve(env *cli.Env) error {
	width, err := env.In.Count()
	if err != nil {
		return err
	}
	n, err := env.In.Count()
	if err != nil {
		return err
	}
	sky, err := skyline.New(width)
	if err != nil {
		return err
	}
	defer sky.Close()
	for i := 0; i < n; i++ {
		lr, err := env.In.Ints(2)
		if err != nil {
			return err
		}
		h, err := sky.Drop(lr[0]-1, lr[1])
		if err != nil {
			return fmt.Errorf("block %d: %w", i+1, err)
		}
		fmt.Fprintln(env.Out, h)
	}
	return cli.DumpTree(env.Config, sky.Tree(), env.Err)
}
