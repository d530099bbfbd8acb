package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrewchambers/ctree/parse"
)

// Dump writes one line per reachable node, children indented by two
// spaces under their parent.
func Dump(f *parse.Forest, o io.Writer) error {
	w := bufio.NewWriter(o)
	dumpChain(w, f, f.Root, 0)
	return w.Flush()
}

func dumpChain(w *bufio.Writer, f *parse.Forest, r parse.Ref, depth int) {
	for ; r != parse.Nil; r = f.Nodes[r].Next {
		n := f.Node(r)
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Label(n))
		dumpChain(w, f, n.Child, depth+1)
	}
}
