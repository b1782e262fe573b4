package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/algebra"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func TestScanner(t *testing.T) {
	sc := NewScanner(strings.NewReader("3 -7\n  42\t5 6 x"))
	if n, err := sc.Count(); err != nil || n != 3 {
		t.Fatalf("Count: %d, %v", n, err)
	}
	if v, err := sc.Int64(); err != nil || v != -7 {
		t.Fatalf("Int64: %d, %v", v, err)
	}
	ints, err := sc.Ints(3)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ints) != "[42 5 6]" {
		t.Errorf("Ints: got %v", ints)
	}
	if _, err := sc.Int(); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput for 'x', got %v", err)
	} else if !strings.Contains(err.Error(), "token 6") {
		t.Errorf("expected position in error, got %v", err)
	}
	if _, err := sc.Int(); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput at end of input, got %v", err)
	}
}

func TestScannerRejectsNegativeCount(t *testing.T) {
	sc := NewScanner(strings.NewReader("-1"))
	if _, err := sc.Count(); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
	if _, err := NewScanner(strings.NewReader("")).Ints(-2); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func testConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return configure("test", koanfadapter.New(nil, "", nil), args, io.Discard)
}

func TestConfigureDefaults(t *testing.T) {
	conf, err := testConfig(t)
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetString("tracelevel.lazyseg") != "Error" || conf.GetString("tracelevel.root") != "Error" {
		t.Errorf("expected quiet tracing by default")
	}
	if conf.Dump() != DumpNone {
		t.Errorf("expected no dumps by default, got %q", conf.Dump())
	}
}

func TestConfigureFlags(t *testing.T) {
	conf, err := testConfig(t, "-trace", "Debug", "-dump=html")
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetString("tracelevel.lazyseg") != "Debug" {
		t.Errorf("expected trace level Debug, got %q", conf.GetString("tracelevel.lazyseg"))
	}
	if conf.Dump() != DumpHTML {
		t.Errorf("expected html dumps, got %q", conf.Dump())
	}
}

func TestConfigureUsageErrors(t *testing.T) {
	for _, args := range [][]string{{"-dump=svg"}, {"-nosuchflag"}, {"extra"}} {
		if _, err := testConfig(t, args...); !errors.Is(err, ErrUsage) {
			t.Errorf("%v: expected ErrUsage, got %v", args, err)
		}
	}
}

func TestRun(t *testing.T) {
	defer trace2go.Teardown()
	conf, _ := testConfig(t)
	var out, errout strings.Builder
	sum := func(env *Env) error {
		n, err := env.In.Count()
		if err != nil {
			return err
		}
		values, err := env.In.Ints(n)
		if err != nil {
			return err
		}
		total := 0
		for _, v := range values {
			total += v
		}
		fmt.Fprintln(env.Out, total)
		return nil
	}
	if code := run("sum", conf, strings.NewReader("3\n1 2 3\n"), &out, &errout, sum); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errout.String())
	}
	if out.String() != "6\n" {
		t.Errorf("expected output 6, got %q", out.String())
	}
	out.Reset()
	if code := run("sum", conf, strings.NewReader("3\n1 2"), &out, &errout, sum); code != 1 {
		t.Errorf("expected exit code 1 for truncated input, got %d", code)
	}
	if !strings.Contains(errout.String(), "malformed input") {
		t.Errorf("expected error message on stderr, got %q", errout.String())
	}
}

func TestDumpTree(t *testing.T) {
	tree, err := lazyseg.Build(algebra.MaxAssign(0), []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		args   []string
		prefix string
	}{
		{nil, ""},
		{[]string{"-dump=html"}, "<table"},
		{[]string{"-dump=dot"}, "strict digraph"},
	}
	for _, c := range cases {
		conf, err := testConfig(t, c.args...)
		if err != nil {
			t.Fatal(err)
		}
		var b strings.Builder
		if err := DumpTree(conf, tree, &b); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(b.String(), c.prefix) || (c.prefix == "" && b.Len() > 0) {
			t.Errorf("%v: unexpected dump %q", c.args, b.String())
		}
	}
}
