/*
Package knapsack schedules jobs with deadlines for a maximum total score.

Every job takes a number of days, has to be finished by its deadline, and
earns a score when done. Jobs are worked on one after the other, starting at
day 0. MaxScore selects the subset of jobs with the highest total score that
can be done in time.

Doing jobs in order of their deadlines is optimal for any fixed subset, so
MaxScore runs a 0/1 knapsack over the days, considering jobs in deadline
order.
*/
package knapsack

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

// ErrInvalidJob signals a job with a negative deadline, duration or score,
// or with a deadline later than MaxDeadline.
var ErrInvalidJob = errors.New("knapsack: invalid job")

// MaxDeadline is the latest deadline MaxScore accepts. MaxScore keeps a
// table with one entry per day.
const MaxDeadline = 1 << 20

// Job is a unit of work.
type Job struct {
	Deadline int // day by which the job has to be finished
	Duration int // days needed
	Score    int // earned when the job is done
}

// MaxScore returns the highest total score of a subset of jobs which can be
// done back to back, each one finishing by its deadline. Jobs longer than
// their deadline never qualify. MaxScore needs O(len(jobs) · D) time, where
// D is the latest deadline.
func MaxScore(jobs []Job) (int, error) {
	horizon := 0
	for i, job := range jobs {
		if job.Deadline < 0 || job.Duration < 0 || job.Score < 0 || job.Deadline > MaxDeadline {
			return 0, fmt.Errorf("%w: #%d %+v", ErrInvalidJob, i, job)
		}
		horizon = max(horizon, job.Deadline)
	}
	sorted := slices.Clone(jobs)
	slices.SortFunc(sorted, func(a, b Job) int {
		if c := cmp.Compare(a.Deadline, b.Deadline); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Duration, b.Duration); c != 0 {
			return c
		}
		return cmp.Compare(a.Score, b.Score)
	})
	// best[d] is the best score of the jobs seen so far, all finished by day d
	best := make([]int, horizon+1)
	for _, job := range sorted {
		for d := job.Deadline; d >= job.Duration; d-- {
			best[d] = max(best[d], best[d-job.Duration]+job.Score)
		}
		for d := 1; d <= horizon; d++ {
			best[d] = max(best[d], best[d-1])
		}
	}
	tracer().Debugf("knapsack: %d jobs over %d days score %d", len(jobs), horizon, best[horizon])
	return best[horizon], nil
}
