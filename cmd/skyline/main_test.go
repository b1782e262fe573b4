package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/lazyseg/internal/cli"
	"github.com/npillmayer/lazyseg/skyline"
)

func runSolve(t *testing.T, input string) (string, error) {
	t.Helper()
	conf, err := cli.Configure("skyline", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	env := &cli.Env{Config: conf, In: cli.NewScanner(strings.NewReader(input)), Out: &out, Err: io.Discard}
	err = solve(env)
	return out.String(), err
}

func TestSample(t *testing.T) {
	out, err := runSolve(t, "100 4\n27 100\n8 39\n83 97\n24 75\n")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n2\n2\n3\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSingleColumn(t *testing.T) {
	out, err := runSolve(t, "1 3\n1 1\n1 1\n1 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestBlockOutside(t *testing.T) {
	_, err := runSolve(t, "5 1\n4 6\n")
	if !errors.Is(err, skyline.ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestTruncatedInput(t *testing.T) {
	_, err := runSolve(t, "5 2\n1 2\n3")
	if !errors.Is(err, cli.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}
