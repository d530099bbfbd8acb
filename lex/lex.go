package lex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
)

// Lexer splits declaration source into tokens.
// The whole input is consumed before any token is handed out, the
// tree builder needs random access to the token slice anyway.
type Lexer struct {
	brdr      *bufio.Reader
	pos       FilePos
	lastPos   FilePos
	markedPos FilePos
	// Set to true if we have hit the end of file.
	eof bool
	// Token ids start at zero for every Lexer.
	nextID int
	toks   []Token
}

type breakout struct {
	err error
}

// Lex creates a lexer reading from r.
// fname is used for error messages when showing the source location.
func Lex(fname string, r io.Reader) *Lexer {
	lx := new(Lexer)
	lx.pos.File = fname
	lx.pos.Line = 1
	lx.pos.Col = 1
	lx.markedPos = lx.pos
	lx.lastPos = lx.pos
	lx.brdr = bufio.NewReader(r)
	return lx
}

// Tokenize lexes everything in r. On error no tokens are returned.
func Tokenize(fname string, r io.Reader) ([]Token, error) {
	return Lex(fname, r).Tokens()
}

// Tokens runs the lexer to the end of its input.
func (lx *Lexer) Tokens() (toks []Token, errRet error) {
	defer func() {
		if e := recover(); e != nil {
			b := e.(*breakout) // Will re-panic if not a breakout.
			toks = nil
			errRet = b.err
		}
	}()
	lx.lex()
	if lx.toks == nil {
		return []Token{}, nil
	}
	return lx.toks, nil
}

func (lx *Lexer) markPos() {
	lx.markedPos = lx.pos
}

func (lx *Lexer) sendTok(kind TokenKind, val string) {
	lx.toks = append(lx.toks, Token{
		ID:   lx.nextID,
		Kind: kind,
		Val:  val,
		Pos:  lx.markedPos,
	})
	lx.nextID += 1
}

func (lx *Lexer) unreadRune() {
	lx.pos = lx.lastPos
	if lx.eof {
		return
	}
	lx.brdr.UnreadRune()
}

func (lx *Lexer) readRune() (rune, bool) {
	r, _, err := lx.brdr.ReadRune()
	lx.lastPos = lx.pos
	if err != nil {
		if err == io.EOF {
			lx.eof = true
			return 0, true
		}
		lx.errorPos(err, lx.pos)
	}
	switch r {
	case '\n':
		lx.pos.Line += 1
		lx.pos.Col = 1
	case '\t':
		lx.pos.Col += 4
	default:
		lx.pos.Col += 1
	}
	return r, false
}

func (lx *Lexer) errorPos(e error, pos FilePos) {
	panic(&breakout{ErrWithLoc(e, pos)})
}

func (lx *Lexer) lex() {
	for {
		lx.markPos()
		first, eof := lx.readRune()
		if eof {
			return
		}
		// The order of these cases decides which class wins.
		switch {
		case isEmpty(first):
		case isParen(first):
			lx.sendTok(PAREN, string(first))
		case isBrace(first):
			lx.sendTok(BRACE, string(first))
		case isBracket(first):
			lx.sendTok(BRACKET, string(first))
		case isNumber(first):
			lx.readRun(NUMBER, first, isNumber)
		case isWordStart(first):
			lx.readRun(WORD, first, isWordTail)
		case isOperator(first):
			lx.readRun(OPERATOR, first, isOperator)
		default:
			lx.errorPos(fmt.Errorf("%w: unknown character %q", ErrLexical, first), lx.markedPos)
		}
	}
}

// readRun reads the longest run of characters accepted by tail.
func (lx *Lexer) readRun(kind TokenKind, first rune, tail func(rune) bool) {
	var buff bytes.Buffer
	buff.WriteRune(first)
	for {
		r, eof := lx.readRune()
		if eof {
			break
		}
		if !tail(r) {
			lx.unreadRune()
			break
		}
		buff.WriteRune(r)
	}
	lx.sendTok(kind, buff.String())
}

func isEmpty(b rune) bool {
	return b == ';' || unicode.IsSpace(b)
}

func isParen(b rune) bool {
	return b == '(' || b == ')'
}

func isBrace(b rune) bool {
	return b == '{' || b == '}'
}

func isBracket(b rune) bool {
	return b == '[' || b == ']'
}

// A lone '-' or 'e' is a number too.
func isNumber(b rune) bool {
	return isNumeric(b) || b == '.' || b == '-' || b == 'e'
}

func isWordStart(b rune) bool {
	return b == '_' || isAlpha(b)
}

func isWordTail(b rune) bool {
	return isWordStart(b) || isNumeric(b)
}

func isOperator(b rune) bool {
	return b == '+' || b == '-' || b == '*' || b == '/'
}

func isAlpha(b rune) bool {
	if b >= 'a' && b <= 'z' {
		return true
	}
	if b >= 'A' && b <= 'Z' {
		return true
	}
	return false
}

func isNumeric(b rune) bool {
	if b >= '0' && b <= '9' {
		return true
	}
	return false
}
