package btree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[K]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	var nodelist, edgelist strings.Builder
	err := t.eachNode(func(n *node[K], depth int) error {
		ID := ids.alloc(n)
		label := dotLabel(n.keys)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.isLeaf(), depth))
		for _, child := range n.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("btree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func dotLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		s := fmt.Sprint(k)
		s = strings.ReplaceAll(s, `\`, `\\`)
		parts[i] = strings.ReplaceAll(s, `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled,shape=box"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += fmt.Sprintf(",color=black,fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
