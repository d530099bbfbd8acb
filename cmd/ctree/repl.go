package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andrewchambers/ctree"
	"github.com/andrewchambers/ctree/lex"
	"github.com/andrewchambers/ctree/parse"
	"github.com/andrewchambers/ctree/report"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/peterh/liner"
)

const (
	historyFile = ".ctree_history"
	promptMain  = "ctree> "
	promptCont  = "...    "
	replFile    = "<stdin>"
)

var (
	banner   = fmt.Sprintf("ctree %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", ctree.Version)
	helpText = `
Commands:
  :quit          Exit
  :help          Show this text
  :mode [NAME]   Show or set the output mode: markup, tree, raw or tokens
`
	replCommands = []string{":quit", ":help", ":mode"}
)

type session struct {
	mode   mode
	out    io.Writer
	errOut io.Writer
}

func repl(m mode, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{mode: m, out: stdout, errOut: stderr}
	for {
		src, ok := readDeclarations(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if s.handle(src) {
			return 0
		}
	}
}

// readDeclarations keeps prompting while the input so far only lacks
// closing brackets or braces.
func readDeclarations(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !needsMore(src) {
			return src, true
		}
	}
}

func needsMore(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	toks, err := lex.Tokenize(replFile, strings.NewReader(src))
	if err != nil {
		return false
	}
	_, err = parse.Parse(toks)
	return errors.Is(err, parse.ErrIncomplete)
}

// handle runs one complete input. It returns true when the session
// should end.
func (s *session) handle(src string) bool {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, ":") {
		return s.command(strings.Fields(trimmed))
	}
	err := process(s.mode, replFile, src, s.out)
	if err != nil {
		report.ReportError(s.errOut, err, src)
	}
	return false
}

func (s *session) command(fields []string) bool {
	switch strings.ToLower(fields[0]) {
	case ":quit":
		return true
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":mode":
		if len(fields) == 1 {
			fmt.Fprintf(s.out, "mode is %s\n", s.mode)
			return false
		}
		m, ok := modeByName(strings.ToLower(fields[1]))
		if !ok {
			fmt.Fprintf(s.errOut, "unknown mode %q, expected one of %s\n", fields[1], strings.Join(modeList, ", "))
			return false
		}
		s.mode = m
		fmt.Fprintf(s.out, "mode is %s\n", s.mode)
	default:
		msg := fmt.Sprintf("unknown command %s.", fields[0])
		if c := closestCommand(fields[0]); c != "" {
			msg += fmt.Sprintf(" Did you mean %s?", c)
		}
		fmt.Fprintln(s.errOut, msg+" Type :help for commands.")
	}
	return false
}

func closestCommand(target string) string {
	ranks := fuzzy.RankFindFold(target, replCommands)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
