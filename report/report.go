package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andrewchambers/ctree/lex"
)

// ReportError prints err to w. When err carries a position, the source
// line from src is printed below it with a caret under the column.
func ReportError(w io.Writer, err error, src string) {
	fmt.Fprintln(w, err)
	var errLoc lex.ErrorLoc
	if !errors.As(err, &errLoc) {
		return
	}
	fmt.Fprintln(w, "")
	pos := errLoc.Pos
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}
	line := strings.TrimSuffix(lines[pos.Line-1], "\r")
	fmt.Fprintln(w, line)
	linelen := 0
	for _, v := range line {
		switch v {
		case '\t':
			linelen += 4
		default:
			linelen += 1
		}
	}
	var caret strings.Builder
	for i := 0; i < linelen; i++ {
		if i+1 == pos.Col {
			caret.WriteRune('^')
			break
		}
		caret.WriteRune(' ')
	}
	fmt.Fprintln(w, caret.String())
}
