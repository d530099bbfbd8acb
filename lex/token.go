package lex

import (
	"fmt"
)

// The token classes.
const (
	NUMBER TokenKind = iota
	OPERATOR
	WORD
	PAREN
	BRACE
	BRACKET
)

var tokenKindToStr = [...]string{
	NUMBER:   "number",
	OPERATOR: "operator",
	WORD:     "word",
	PAREN:    "paren",
	BRACE:    "brace",
	BRACKET:  "bracket",
}

// Words the grammar knows about. They are still lexed as WORD tokens,
// this only tags them.
var keywordLUT = map[string]bool{
	"typedef": true,
	"struct":  true,
	"define":  true,
	"if":      true,
	"else":    true,
}

type TokenKind uint32

func (tk TokenKind) String() string {
	if uint32(tk) >= uint32(len(tokenKindToStr)) {
		return "Unknown"
	}
	return tokenKindToStr[tk]
}

type FilePos struct {
	File string
	Line int
	Col  int
}

func (pos FilePos) String() string {
	return fmt.Sprintf("%s:%d:%d", pos.File, pos.Line, pos.Col)
}

//Token is one classified run of characters.
//Tokens are never modified once the lexer has produced them.
type Token struct {
	ID   int
	Kind TokenKind
	Val  string
	Pos  FilePos
}

func (t Token) IsKeyword() bool {
	return t.Kind == WORD && keywordLUT[t.Val]
}

func (t Token) String() string {
	return fmt.Sprintf("%s at %s", t.Val, t.Pos)
}
