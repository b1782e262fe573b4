/*
Package cli holds the plumbing shared by the commands: configuration, tracing
set-up, reading whitespace-separated input and dumping trees.

Configuration is read with schuko's koanf adapter from NestedText files at
the standard locations for app tag "lazyseg", then overridden by
command-line flags. Keys are:

	tracing.adapter      tracing adapter, default "go"
	tracelevel.root      trace level of the root tracer, default Error
	tracelevel.lazyseg   trace level of the "lazyseg" tracer, default Error
	dump                 dump final trees to stderr: "", "console", "html" or "dot"
*/
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

// ErrUsage signals invalid command-line arguments.
var ErrUsage = errors.New("cli: usage")

// Dump formats.
const (
	DumpNone    = ""
	DumpConsole = "console"
	DumpHTML    = "html"
	DumpDot     = "dot"
)

// Config is the configuration of a command.
type Config struct {
	schuko.Configuration
}

// Dump returns the configured dump format.
func (c *Config) Dump() string {
	return c.GetString("dump")
}

// Configure creates the configuration for a command called name, from
// configuration files and from the command-line arguments args (without the
// command name). Flag errors are reported to errout and wrapped in ErrUsage.
func Configure(name string, args []string, errout io.Writer) (*Config, error) {
	conf := koanfadapter.New(nil, "lazyseg", []string{"nt"})
	conf.InitDefaults()
	return configure(name, conf, args, errout)
}

func configure(name string, conf *koanfadapter.KConf, args []string, errout io.Writer) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(errout)
	trace := flags.String("trace", "", "trace level for lazyseg: Error, Info or Debug")
	dump := flags.String("dump", "", "dump final trees to stderr: console, html or dot")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, flags.Args())
	}
	for _, key := range []string{"tracelevel.root", "tracelevel.lazyseg"} {
		if !conf.IsSet(key) {
			conf.Set(key, "Error")
		}
	}
	if *trace != "" {
		conf.Set("tracelevel.lazyseg", *trace)
	}
	if *dump != "" {
		conf.Set("dump", *dump)
	}
	switch d := conf.GetString("dump"); d {
	case DumpNone, DumpConsole, DumpHTML, DumpDot:
	default:
		return nil, fmt.Errorf("%w: unknown dump format %q", ErrUsage, d)
	}
	return &Config{Configuration: conf}, nil
}

// SetupTracing installs the Go log adapter and configures the root tracer
// and the "lazyseg" tracer from conf.
func SetupTracing(conf *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("tracing configured at level %s", conf.GetString("tracelevel.lazyseg"))
	return nil
}
