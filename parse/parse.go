package parse

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/andrewchambers/ctree/lex"
)

var (
	// ErrStructural is wrapped by errors about malformed nesting or
	// tokens that cannot start a declaration.
	ErrStructural = errors.New("structural error")
	// ErrIncomplete means the input ended inside an open group. More
	// input could still make it valid.
	ErrIncomplete = fmt.Errorf("%w: unexpected end of input", ErrStructural)
	// ErrUnsupported is a construct the fixup pass has no rewrite for.
	ErrUnsupported = errors.New("unsupported construct")
)

type parser struct {
	toks []lex.Token
	idx  int
	f    *Forest
}

type parseErrorBreakOut struct {
	err error
}

// Parse builds the provisional tree for toks. Words become Variable
// nodes and numbers Constant nodes, '[' and '{' open groups. Nothing is
// classified further until Fixup.
func Parse(toks []lex.Token) (f *Forest, errRet error) {
	p := &parser{}
	p.toks = toks
	p.f = NewForest()

	defer func() {
		if e := recover(); e != nil {
			peb := e.(parseErrorBreakOut) // Will re-panic if not a breakout.
			f = nil
			errRet = peb.err
		}
	}()
	p.parseTopLevels()
	return p.f, nil
}

func locError(pos lex.FilePos, err error) error {
	if os.Getenv("CTREEDEBUG") == "true" {
		err = fmt.Errorf("%w\n%s", err, debug.Stack())
	}
	return lex.ErrWithLoc(err, pos)
}

func (p *parser) errorPos(pos lex.FilePos, m string, vals ...interface{}) {
	err := fmt.Errorf("%w: "+m, append([]interface{}{ErrStructural}, vals...)...)
	panic(parseErrorBreakOut{locError(pos, err)})
}

func (p *parser) parseTopLevels() {
	last := Nil
	for p.idx < len(p.toks) {
		n := p.parseNode(last)
		if p.f.Root == Nil {
			p.f.Root = n
		}
		last = n
	}
}

// parseNode consumes one node starting at the current token and links
// it after last.
func (p *parser) parseNode(last Ref) Ref {
	tok := p.toks[p.idx]
	var n Ref
	switch tok.Kind {
	case lex.WORD:
		p.idx++
		n = p.f.newNode(Variable, tok)
	case lex.NUMBER:
		p.idx++
		n = p.f.newNode(Constant, tok)
	case lex.BRACKET:
		n = p.parseGroup(ParenWrap, tok, "[", "]")
	case lex.BRACE:
		n = p.parseGroup(BlockWrap, tok, "{", "}")
	default:
		p.errorPos(tok.Pos, "unexpected %s %q", tok.Kind, tok.Val)
	}
	p.f.Nodes[n].Last = last
	if last != Nil {
		p.f.Nodes[last].Next = n
	}
	return n
}

func (p *parser) parseGroup(kind NodeKind, open lex.Token, opener, closer string) Ref {
	switch open.Val {
	case opener:
	case closer:
		p.errorPos(open.Pos, "unexpected %q", closer)
	default:
		p.errorPos(open.Pos, "unexpected %s %q", open.Kind, open.Val)
	}
	p.idx++
	n := p.f.newNode(kind, open)
	last := Nil
	for {
		if p.idx >= len(p.toks) {
			err := fmt.Errorf("%w, %q is never closed", ErrIncomplete, opener)
			panic(parseErrorBreakOut{locError(open.Pos, err)})
		}
		head := p.toks[p.idx]
		if head.Kind == open.Kind && head.Val == closer {
			break
		}
		c := p.parseNode(last)
		p.f.Nodes[c].Parent = n
		if last == Nil {
			p.f.Nodes[n].Child = c
		}
		last = c
	}
	p.idx++
	return n
}
