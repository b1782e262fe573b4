package knapsack

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMaxScore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()
	//
	cases := []struct {
		name string
		jobs []Job
		want int
	}{
		{"none", nil, 0},
		{"single", []Job{{Deadline: 3, Duration: 2, Score: 5}}, 5},
		{"too long", []Job{{Deadline: 1, Duration: 2, Score: 5}}, 0},
		{"order matters", []Job{{5, 3, 10}, {2, 2, 7}}, 17},
		{"conflict", []Job{{3, 2, 4}, {3, 2, 6}, {4, 1, 3}}, 9},
		{"zero duration", []Job{{0, 0, 4}, {1, 1, 1}}, 5},
		{"many", []Job{{1, 1, 1}, {2, 1, 2}, {3, 1, 3}, {3, 2, 10}, {6, 3, 4}}, 17},
	}
	for _, c := range cases {
		got, err := MaxScore(c.jobs)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: max score %d, want %d", c.name, got, c.want)
		}
	}
}

func TestMaxScoreRejectsInvalidJobs(t *testing.T) {
	for _, job := range []Job{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}, {MaxDeadline + 1, 1, 1}} {
		if _, err := MaxScore([]Job{{2, 1, 1}, job}); !errors.Is(err, ErrInvalidJob) {
			t.Errorf("%+v: expected ErrInvalidJob, got %v", job, err)
		}
	}
}

func TestMaxScoreAtLatestDeadline(t *testing.T) {
	got, err := MaxScore([]Job{{MaxDeadline, MaxDeadline, 3}, {2, 1, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("expected score 4, got %d", got)
	}
}

func TestMaxScoreDoesNotReorderInput(t *testing.T) {
	jobs := []Job{{5, 1, 1}, {1, 1, 1}}
	if _, err := MaxScore(jobs); err != nil {
		t.Fatal(err)
	}
	if jobs[0].Deadline != 5 {
		t.Errorf("input has been sorted in place")
	}
}

// bruteForce tries every subset, scheduling it in deadline order.
func bruteForce(jobs []Job) int {
	best := 0
	for mask := 0; mask < 1<<len(jobs); mask++ {
		var chosen []Job
		for i := range jobs {
			if mask&(1<<i) != 0 {
				chosen = append(chosen, jobs[i])
			}
		}
		for i := 1; i < len(chosen); i++ {
			for j := i; j > 0 && chosen[j].Deadline < chosen[j-1].Deadline; j-- {
				chosen[j], chosen[j-1] = chosen[j-1], chosen[j]
			}
		}
		day, score, ok := 0, 0, true
		for _, job := range chosen {
			day += job.Duration
			if day > job.Deadline {
				ok = false
				break
			}
			score += job.Score
		}
		if ok && score > best {
			best = score
		}
	}
	return best
}

func TestMaxScoreAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for round := 0; round < 200; round++ {
		jobs := make([]Job, r.Intn(9))
		for i := range jobs {
			jobs[i] = Job{Deadline: r.Intn(12), Duration: r.Intn(5), Score: r.Intn(20)}
		}
		got, err := MaxScore(jobs)
		if err != nil {
			t.Fatal(err)
		}
		if want := bruteForce(jobs); got != want {
			t.Fatalf("round %d: %v scores %d, want %d", round, jobs, got, want)
		}
	}
}
