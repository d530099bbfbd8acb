package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrewchambers/ctree"
	"github.com/andrewchambers/ctree/lex"
	"github.com/andrewchambers/ctree/parse"
	"github.com/andrewchambers/ctree/render"
	"github.com/andrewchambers/ctree/report"
)

type mode int

const (
	modeMarkup mode = iota
	modeTree
	modeRaw
	modeTokens
)

var modeList = []string{
	modeMarkup: "markup",
	modeTree:   "tree",
	modeRaw:    "raw",
	modeTokens: "tokens",
}

func (m mode) String() string {
	return modeList[m]
}

func modeByName(name string) (mode, bool) {
	for i, s := range modeList {
		if s == name {
			return mode(i), true
		}
	}
	return modeMarkup, false
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "ctree version %s\n", ctree.Version)
}

func printUsage(out io.Writer, fs *flag.FlagSet) {
	printVersion(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  ctree [FLAGS] FILE")
	fmt.Fprintln(out, "  ctree [FLAGS] -       read declarations from stdin")
	fmt.Fprintln(out, "  ctree                 start the interactive prompt")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintln(out, "  CTREEDEBUG=true enables extended error messages for debugging.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// process writes src to out in the given mode.
func process(m mode, fname, src string, out io.Writer) error {
	switch m {
	case modeTokens:
		toks, err := lex.Tokenize(fname, strings.NewReader(src))
		if err != nil {
			return err
		}
		for _, tok := range toks {
			kind := tok.Kind.String()
			if tok.IsKeyword() {
				kind = "keyword"
			}
			fmt.Fprintf(out, "%s:%s:%d:%d\n", kind, tok.Val, tok.Pos.Line, tok.Pos.Col)
		}
		return nil
	case modeRaw:
		toks, err := lex.Tokenize(fname, strings.NewReader(src))
		if err != nil {
			return err
		}
		f, err := parse.Parse(toks)
		if err != nil {
			return err
		}
		return render.Dump(f, out)
	}
	f, err := ctree.Analyze(fname, strings.NewReader(src))
	if err != nil {
		return err
	}
	if m == modeTree {
		return render.Dump(f, out)
	}
	err = render.Render(f, out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func readSource(path string, stdin io.Reader) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("Failed to read source file %s: %s", path, err)
	}
	return string(b), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ctree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }
	tokenizeOnly := fs.Bool("T", false, "Print tokens after lexing (For debugging).")
	rawOnly := fs.Bool("P", false, "Print the tree before fixup (For debugging).")
	treeOut := fs.Bool("tree", false, "Print the tree as indented text instead of markup.")
	interactive := fs.Bool("i", false, "Start the interactive prompt.")
	version := fs.Bool("version", false, "Print version info and exit.")
	outputPath := fs.String("o", "-", "Write output to `file`, '-' for stdout.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		printVersion(stdout)
		return 0
	}
	m := modeMarkup
	switch {
	case *tokenizeOnly:
		m = modeTokens
	case *rawOnly:
		m = modeRaw
	case *treeOut:
		m = modeTree
	}
	if *interactive || fs.NArg() == 0 {
		return repl(m, stdout, stderr)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Bad number of args, please specify a single source file.\n")
		return 1
	}

	input := fs.Arg(0)
	src, err := readSource(input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fname := input
	if fname == "-" {
		fname = "<stdin>"
	}

	output := stdout
	if *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open output file %s\n", err)
			return 1
		}
		defer f.Close()
		output = f
	}

	err = process(m, fname, src, output)
	if err != nil {
		report.ReportError(stderr, err, src)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
