package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // maximum width in fixed-width positions
	Context   *uax11.Context // for measuring labels; nil means uax11.LatinContext
}

// ConfigFromTerminal creates a Config for dumping trees to the terminal on
// stdin. Trees are laid out within the terminal's width, or within 80 columns
// if stdin is not a terminal. Labels are measured in the width context of the
// user's locale.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("dump", "console").Debugf("setting line width to %d en", config.LineWidth)
	return config
}

// Console is a format for dumping trees to a console with a fixed width
// font.
//
// If every level fits into the configured line width, nodes are drawn as a
// tree, each one centered above the leaves it covers. Otherwise Console falls
// back to an indented listing with one node per line.
type Console struct {
	colors map[Kind]*color.Color
}

// NewConsole creates a console format. colors maps node kinds to display
// colors and may contain just a subset of the kinds. If colors is nil, a
// default palette is used.
func NewConsole(colors map[Kind]*color.Color) *Console {
	if colors == nil {
		colors = map[Kind]*color.Color{
			Pending: color.New(color.FgRed, color.Bold),
			Padding: color.New(color.FgHiBlack),
		}
	}
	return &Console{colors: colors}
}

// Print dumps a tree snapshot to w. If config is nil, a configuration is
// derived from the current terminal.
func Print[V, L any](c *Console, snap lazyseg.Snapshot[V, L], w io.Writer, config *Config) error {
	if len(snap.Levels) == 0 {
		return ErrEmptySnapshot
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	return c.Output(Levels(snap), w, config)
}

// Output dumps rows of cells to w.
func (c *Console) Output(levels [][]Cell, w io.Writer, config *Config) error {
	if len(levels) == 0 {
		return ErrEmptySnapshot
	}
	cw := 1
	for _, row := range levels {
		for _, cell := range row {
			if lw := displayWidth(cell.Label, config.Context); lw > cw {
				cw = lw
			}
		}
	}
	leaves := len(levels[len(levels)-1])
	if total := leaves*cw + leaves - 1; total > config.LineWidth {
		tracer().Debugf("dump: tree needs %d en, falling back to listing", total)
		return c.list(levels, w)
	}
	for _, row := range levels {
		for i, cell := range row {
			if i > 0 {
				io.WriteString(w, " ")
			}
			width := cell.Span*cw + cell.Span - 1
			pad := width - displayWidth(cell.Label, config.Context)
			io.WriteString(w, strings.Repeat(" ", pad/2))
			c.text(cell, w)
			io.WriteString(w, strings.Repeat(" ", pad-pad/2))
		}
		io.WriteString(w, "\n")
	}
	return nil
}

func (c *Console) list(levels [][]Cell, w io.Writer) error {
	for d, row := range levels {
		for _, cell := range row {
			if cell.Kind == Padding {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%d: ", strings.Repeat("  ", d), cell.Index); err != nil {
				return err
			}
			c.text(cell, w)
			io.WriteString(w, "\n")
		}
	}
	return nil
}

func (c *Console) text(cell Cell, w io.Writer) {
	if col, ok := c.colors[cell.Kind]; ok {
		col.Fprint(w, cell.Label)
		return
	}
	io.WriteString(w, cell.Label)
}
