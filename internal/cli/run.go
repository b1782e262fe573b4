package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/dump"
)

// Env is what a command works with.
type Env struct {
	Config *Config
	In     *Scanner
	Out    io.Writer // buffered, flushed by Run
	Err    io.Writer // unbuffered, for dumps
}

// Run configures a command, runs solve and returns the exit code: 0 on
// success, 1 if solve fails and 2 for usage errors.
func Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer,
	solve func(env *Env) error) int {
	//
	conf, err := Configure(name, args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 2
	}
	return run(name, conf, stdin, stdout, stderr, solve)
}

func run(name string, conf *Config, stdin io.Reader, stdout, stderr io.Writer,
	solve func(env *Env) error) int {
	//
	if err := SetupTracing(conf); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	out := bufio.NewWriter(stdout)
	env := &Env{Config: conf, In: NewScanner(stdin), Out: out, Err: stderr}
	err := solve(env)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		tracer().Errorf("%s: %v", name, err)
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		if errors.Is(err, ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// DumpTree writes the internal state of tree to w, in the format configured
// with key "dump". Nothing is written if dumps are off.
func DumpTree[V any, L comparable](conf *Config, tree *lazyseg.Tree[V, L], w io.Writer) error {
	switch conf.Dump() {
	case DumpConsole:
		return dump.Print(dump.NewConsole(nil), tree.Snapshot(), w, dump.ConfigFromTerminal())
	case DumpHTML:
		if err := dump.HTML(tree.Snapshot(), w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case DumpDot:
		lazyseg.Tree2Dot(tree, w)
	}
	return nil
}
