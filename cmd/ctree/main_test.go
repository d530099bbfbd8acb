package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr strings.Builder
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decl.h")
	if err := os.WriteFile(path, []byte("int a;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runWith(t, "", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %s", code, errOut)
	}
	expected := "<div class=sibling>@ 0 - Variable - int<div class=children><div class=sibling>@ 1 - VariableName - a</div></div></div>\n"
	if out != expected {
		t.Errorf("got %q expected %q", out, expected)
	}
}

func TestRunStdinModes(t *testing.T) {
	cases := []struct {
		flag     string
		expected string
	}{
		{"-T", "keyword:typedef:1:1\nword:int:1:9\nword:N:1:13\n"},
		{"-P", "@ 0 - Variable - typedef\n@ 1 - Variable - int\n@ 2 - Variable - N\n"},
		{"-tree", "@ 0 - TypeDef - typedef\n  @ 1 - Variable - int\n  @ 2 - TypeDefName - N\n"},
	}
	for _, tc := range cases {
		code, out, errOut := runWith(t, "typedef int N;", tc.flag, "-")
		if code != 0 {
			t.Errorf("%s: exit code %d, stderr %s", tc.flag, code, errOut)
			continue
		}
		if out != tc.expected {
			t.Errorf("%s: got %q expected %q", tc.flag, out, tc.expected)
		}
	}
}

func TestRunOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.html")
	code, out, errOut := runWith(t, "7", "-o", outPath, "-")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %s", code, errOut)
	}
	if out != "" {
		t.Errorf("unexpected stdout %q", out)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "<div class=sibling>@ 0 - Constant - 7</div>\n" {
		t.Errorf("unexpected output file %q", b)
	}
}

func TestRunReportsErrors(t *testing.T) {
	code, out, errOut := runWith(t, "int a;\n[1 2", "-")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout %q", out)
	}
	if !strings.Contains(errOut, "never closed") || !strings.HasSuffix(errOut, "[1 2\n^\n") {
		t.Errorf("unexpected report %q", errOut)
	}
}

func TestRunArgs(t *testing.T) {
	code, out, _ := runWith(t, "", "-version")
	if code != 0 || !strings.HasPrefix(out, "ctree version ") {
		t.Errorf("-version: code %d output %q", code, out)
	}
	code, _, _ = runWith(t, "", "a.h", "b.h")
	if code != 1 {
		t.Errorf("two files: expected exit code 1, got %d", code)
	}
	code, _, _ = runWith(t, "", filepath.Join(t.TempDir(), "missing.h"))
	if code != 1 {
		t.Errorf("missing file: expected exit code 1, got %d", code)
	}
	code, _, _ = runWith(t, "", "-nosuchflag", "-")
	if code != 2 {
		t.Errorf("bad flag: expected exit code 2, got %d", code)
	}
}

func TestSession(t *testing.T) {
	var out, errOut strings.Builder
	s := &session{mode: modeMarkup, out: &out, errOut: &errOut}
	if s.handle(":mode tree") {
		t.Fatal(":mode ended the session")
	}
	if s.mode != modeTree {
		t.Fatalf("mode is %s", s.mode)
	}
	out.Reset()
	s.handle("int a")
	if out.String() != "@ 0 - Variable - int\n  @ 1 - VariableName - a\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	s.handle("int @")
	if !strings.Contains(errOut.String(), "unknown character '@'") {
		t.Errorf("unexpected error output %q", errOut.String())
	}
	errOut.Reset()
	s.handle(":mode nope")
	if s.mode != modeTree || !strings.Contains(errOut.String(), "unknown mode") {
		t.Errorf("bad mode was accepted: %s %q", s.mode, errOut.String())
	}
	errOut.Reset()
	s.handle(":hlp")
	if !strings.Contains(errOut.String(), "Did you mean :help?") {
		t.Errorf("no suggestion in %q", errOut.String())
	}
	if !s.handle(":QUIT") {
		t.Error(":QUIT did not end the session")
	}
}

func TestClosestCommand(t *testing.T) {
	cases := map[string]string{
		":q":    ":quit",
		":md":   ":mode",
		":HELP": ":help",
		":zzz":  "",
	}
	for in, expected := range cases {
		if got := closestCommand(in); got != expected {
			t.Errorf("%s: got %q expected %q", in, got, expected)
		}
	}
}

func TestNeedsMore(t *testing.T) {
	cases := map[string]bool{
		"int a":           false,
		"struct {":        true,
		"struct {\nint a": true,
		"struct { }":      false,
		"[1 2":            true,
		"]":               false,
		"@":               false,
		":mode {":         false,
	}
	for src, expected := range cases {
		if got := needsMore(src); got != expected {
			t.Errorf("%q: got %v expected %v", src, got, expected)
		}
	}
}
