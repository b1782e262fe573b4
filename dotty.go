package lazyseg

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is labelled with its aggregate; nodes
// with a pending update show it in a second line and are highlighted.
// Padding subtrees are drawn in grey.
func Tree2Dot[V any, L comparable](tree *Tree[V, L], w io.Writer) {
	if tree == nil {
		tracer().Errorf("tree DOT: nil tree")
		return
	}
	snap := tree.Snapshot()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for d, level := range snap.Levels {
		isleaf := d == len(snap.Levels)-1
		for _, node := range level {
			label := dotEscape(fmt.Sprintf("%v", node.Aggregate))
			if node.Dirty {
				label += "\\n+" + dotEscape(fmt.Sprintf("%v", node.Pending))
			}
			styles := nodeDotStyles(isleaf, node.Dirty, node.Padding)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node.Index, label, styles)
			if !isleaf {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node.Index, 2*node.Index)
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node.Index, 2*node.Index+1)
			}
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotEscape makes s safe for use within a quoted DOT string.
func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

func nodeDotStyles(isleaf bool, dirty bool, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	switch {
	case padding:
		s += ",fillcolor=\"#dddddd\""
	case dirty:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolor)
	default:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolor)
	}
	return s
}

const (
	hexcolor   = "#a3d7e4"
	hexhlcolor = "#ffaa66"
)
