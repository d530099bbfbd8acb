package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/andrewchambers/ctree/parse"
)

type emitter struct {
	o *bufio.Writer
	f *parse.Forest
}

// Render writes the forest as nested div blocks. Every reachable node
// gets a sibling block holding its label, and a children block inside
// that when it has children. An empty forest renders as nothing.
func Render(f *parse.Forest, o io.Writer) error {
	e := &emitter{
		o: bufio.NewWriter(o),
		f: f,
	}
	e.emitChain(f.Root)
	return e.o.Flush()
}

// String is Render into a string.
func String(f *parse.Forest) string {
	var sb strings.Builder
	Render(f, &sb)
	return sb.String()
}

func (e *emitter) emit(s string, args ...interface{}) {
	fmt.Fprintf(e.o, s, args...)
}

func Label(n *parse.Node) string {
	return fmt.Sprintf("@ %d - %s - %s", n.ID, n.Kind, n.Name)
}

func (e *emitter) emitChain(r parse.Ref) {
	for ; r != parse.Nil; r = e.f.Nodes[r].Next {
		n := e.f.Node(r)
		e.emit("<div class=sibling>%s", html.EscapeString(Label(n)))
		if n.Child != parse.Nil {
			e.emit("<div class=children>")
			e.emitChain(n.Child)
			e.emit("</div>")
		}
		e.emit("</div>")
	}
}
