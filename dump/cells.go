package dump

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ErrEmptySnapshot is returned when asked to render a snapshot without levels.
var ErrEmptySnapshot = errors.New("dump: empty snapshot")

// Kind classifies a node for display.
type Kind int8

// Kinds of nodes.
const (
	Plain   Kind = iota // nothing pending
	Pending             // carries an update not yet pushed to its children
	Padding             // covers padding leaves only
)

func (k Kind) String() string {
	switch k {
	case Pending:
		return "pending"
	case Padding:
		return "padding"
	}
	return "plain"
}

// Cell is the display form of a tree node.
type Cell struct {
	Index int    // node index within the tree
	Span  int    // number of leaves covered
	Label string // aggregate, and pending update if any
	Kind  Kind
}

// Levels converts a snapshot to rows of cells, the root row first.
func Levels[V, L any](snap lazyseg.Snapshot[V, L]) [][]Cell {
	levels := make([][]Cell, len(snap.Levels))
	height := len(snap.Levels)
	for d, nodes := range snap.Levels {
		row := make([]Cell, len(nodes))
		for i, node := range nodes {
			cell := Cell{
				Index: node.Index,
				Span:  1 << (height - 1 - d),
				Label: fmt.Sprintf("%v", node.Aggregate),
			}
			switch {
			case node.Padding:
				cell.Kind = Padding
			case node.Dirty:
				cell.Kind = Pending
				cell.Label = fmt.Sprintf("%v +%v", node.Aggregate, node.Pending)
			}
			row[i] = cell
		}
		levels[d] = row
	}
	return levels
}

var setupGraphemes sync.Once

// displayWidth is the number of fixed-width positions s occupies on a console.
// ASCII runes take one position each; uax11 reports digits as
// ambiguous-width, which is not what a console prints. Runs of other runes
// are measured with uax11.
func displayWidth(s string, context *uax11.Context) int {
	width, start := 0, -1
	for i, r := range s {
		if r < utf8.RuneSelf {
			if start >= 0 {
				width += unicodeWidth(s[start:i], context)
				start = -1
			}
			width++
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		width += unicodeWidth(s[start:], context)
	}
	return width
}

func unicodeWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
