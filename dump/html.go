package dump

import (
	"io"
	"strconv"

	"github.com/npillmayer/lazyseg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a tree snapshot as an HTML table to w. Every level of the tree
// is a table row; every node is a cell spanning the leaves it covers, with a
// CSS class of "plain", "pending" or "padding".
func HTML[V, L any](snap lazyseg.Snapshot[V, L], w io.Writer) error {
	if len(snap.Levels) == 0 {
		return ErrEmptySnapshot
	}
	return html.Render(w, Table(Levels(snap)))
}

// Table creates an HTML table node for rows of cells.
func Table(levels [][]Cell) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "lazyseg"})
	body := element(atom.Tbody)
	table.AppendChild(body)
	for _, row := range levels {
		tr := element(atom.Tr)
		for _, cell := range row {
			td := element(atom.Td,
				html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.Span)},
				html.Attribute{Key: "class", Val: cell.Kind.String()},
				html.Attribute{Key: "title", Val: "node " + strconv.Itoa(cell.Index)},
			)
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Label})
			tr.AppendChild(td)
		}
		body.AppendChild(tr)
	}
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
