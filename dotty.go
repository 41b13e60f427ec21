package dsarray

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/dsarray/sbt"
)

type nodeids[T any] struct {
	idTable map[*sbt.Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*sbt.Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *sbt.Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *sbt.Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal tree structure of an array in Graphviz DOT format
// (for debugging purposes). Inner nodes show their element and subtree size,
// empty subtrees are drawn as small black circles.
func ToDot[T any](a *Array[T], w io.Writer) error {
	if a == nil || w == nil {
		return ErrIllegalArguments
	}
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	emptyID := 100000
	var walk func(node *sbt.Node[T], depth int)
	walk = func(node *sbt.Node[T], depth int) {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v\\n#%d", node.Value(), node.Size())
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsLeaf(), depth))
		for _, child := range []*sbt.Node[T]{node.Left(), node.Right()} {
			if child.IsEmpty() {
				emptyID++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", emptyID, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, emptyID)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child, depth+1)
		}
	}
	if root := a.t().Root(); !root.IsEmpty() {
		walk(root, 0)
	}
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		tracer().Errorf("array DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2,style=filled]"
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
