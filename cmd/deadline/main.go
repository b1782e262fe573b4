// Command deadline picks jobs with deadlines for a maximum total score.
//
// Input is read from stdin:
//
//	N
//	D_1 C_1 S_1
//	…
//	D_N C_N S_N
//
// Job i has to be finished by day D_i, takes C_i days and scores S_i. Output
// is the maximum total score of a feasible selection of jobs.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/lazyseg/internal/cli"
	"github.com/npillmayer/lazyseg/knapsack"
)

func main() {
	os.Exit(cli.Run("deadline", os.Args[1:], os.Stdin, os.Stdout, os.Stderr, solve))
}

func solve(env *cli.Env) error {
	n, err := env.In.Count()
	if err != nil {
		return err
	}
	jobs := make([]knapsack.Job, n)
	for i := range jobs {
		dcs, err := env.In.Ints(3)
		if err != nil {
			return err
		}
		jobs[i] = knapsack.Job{Deadline: dcs[0], Duration: dcs[1], Score: dcs[2]}
	}
	score, err := knapsack.MaxScore(jobs)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, score)
	return nil
}
