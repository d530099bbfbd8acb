// Package ctree turns a fragment of C style declarations into a tree
// and renders it as nested markup.
package ctree

import (
	"io"
	"strings"

	"github.com/andrewchambers/ctree/lex"
	"github.com/andrewchambers/ctree/parse"
	"github.com/andrewchambers/ctree/render"
)

const Version = "0.1"

// Analyze lexes, builds and fixes up the declarations read from r.
// fname is only used in error positions.
func Analyze(fname string, r io.Reader) (*parse.Forest, error) {
	toks, err := lex.Tokenize(fname, r)
	if err != nil {
		return nil, err
	}
	f, err := parse.Parse(toks)
	if err != nil {
		return nil, err
	}
	err = parse.Fixup(f)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Convert runs the whole pipeline over input. Token and node ids start
// from zero on every call, so equal inputs give equal output.
func Convert(input string) (string, error) {
	f, err := Analyze("<input>", strings.NewReader(input))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	err = render.Render(f, &sb)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
