package render

import (
	"strings"
	"testing"

	"github.com/andrewchambers/ctree/lex"
	"github.com/andrewchambers/ctree/parse"
)

func fixedTree(t *testing.T, src string) *parse.Forest {
	t.Helper()
	toks, err := lex.Tokenize("test.c", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	f, err := parse.Parse(toks)
	if err != nil {
		t.Fatal(err)
	}
	if err := parse.Fixup(f); err != nil {
		t.Fatal(err)
	}
	return f
}

var renderTestCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"1", "<div class=sibling>@ 0 - Constant - 1</div>"},
	{
		"1 2",
		"<div class=sibling>@ 0 - Constant - 1</div>" +
			"<div class=sibling>@ 1 - Constant - 2</div>",
	},
	{
		"int a",
		"<div class=sibling>@ 0 - Variable - int" +
			"<div class=children><div class=sibling>@ 1 - VariableName - a</div></div>" +
			"</div>",
	},
	{
		"{1 2} x",
		"<div class=sibling>@ 0 - BlockWrap - {" +
			"<div class=children>" +
			"<div class=sibling>@ 1 - Constant - 1</div>" +
			"<div class=sibling>@ 2 - Constant - 2</div>" +
			"</div>" +
			"</div>" +
			"<div class=sibling>@ 3 - Variable - x</div>",
	},
	{
		"typedef int MyInt",
		"<div class=sibling>@ 0 - TypeDef - typedef" +
			"<div class=children>" +
			"<div class=sibling>@ 1 - Variable - int</div>" +
			"<div class=sibling>@ 2 - TypeDefName - MyInt</div>" +
			"</div>" +
			"</div>",
	},
	{
		"struct { int a }",
		"<div class=sibling>@ 0 - Struct - struct" +
			"<div class=children>" +
			"<div class=sibling>@ 2 - Variable - int" +
			"<div class=children><div class=sibling>@ 3 - VariableName - a</div></div>" +
			"</div>" +
			"</div>" +
			"</div>",
	},
}

func TestRender(t *testing.T) {
	for _, tc := range renderTestCases {
		f := fixedTree(t, tc.src)
		var sb strings.Builder
		if err := Render(f, &sb); err != nil {
			t.Fatal(err)
		}
		if sb.String() != tc.expected {
			t.Errorf("%q:\ngot      %s\nexpected %s", tc.src, sb.String(), tc.expected)
		}
		if String(f) != tc.expected {
			t.Errorf("%q: String differs from Render", tc.src)
		}
	}
}

func TestRenderDoesNotModify(t *testing.T) {
	f := fixedTree(t, "typedef struct { int a } P; int b [3]")
	before := append([]parse.Node(nil), f.Nodes...)
	first := String(f)
	if String(f) != first {
		t.Fatal("rendering twice gave different output")
	}
	for i := range before {
		if before[i] != f.Nodes[i] {
			t.Fatalf("node %d changed while rendering", i)
		}
	}
}

func TestDump(t *testing.T) {
	f := fixedTree(t, "typedef struct { int a } P; char c")
	var sb strings.Builder
	if err := Dump(f, &sb); err != nil {
		t.Fatal(err)
	}
	expected := "" +
		"@ 0 - TypeDef - typedef\n" +
		"  @ 1 - Struct - struct\n" +
		"    @ 3 - Variable - int\n" +
		"      @ 4 - VariableName - a\n" +
		"  @ 5 - TypeDefName - P\n" +
		"@ 6 - Variable - char\n" +
		"  @ 7 - VariableName - c\n"
	if sb.String() != expected {
		t.Errorf("got\n%s\nexpected\n%s", sb.String(), expected)
	}
}
