// Package repl is the interactive read-eval-print loop, built on
// peterh/liner for line editing and adrg/xdg for a per-user history file,
// the same pairing the anma teacher-adjacent example wires up in its own
// RunPrompt. Session state (every declaration seen so far) persists
// across lines, per SPEC_FULL.md's supplemented REPL feature: a line
// that only adds a new function or struct becomes visible to every line
// typed after it.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/alecthomas/repr"
	"github.com/peterh/liner"

	"github.com/nomisfailla/arctic/internal/compiler"
	"github.com/nomisfailla/arctic/internal/diag"
	"github.com/nomisfailla/arctic/internal/source"
)

var historyPath = filepath.Join(xdg.DataHome, "arctic", "history")

// Session accumulates every line's source text, so the compiler always
// sees the whole program typed so far. This front end has no incremental
// checker, so re-running the full pipeline per line is the simplest
// correct way to carry state across lines.
type Session struct {
	file      string
	source    []byte
	lastTried []byte // the candidate from the most recent Eval call, for diagnostic rendering
	dumpAST   bool
	out, err  io.Writer
}

// NewSession starts an empty REPL session. dumpAST controls whether the
// accumulated module is pretty-printed (via alecthomas/repr) after every
// accepted line, mirroring the --dump-ast CLI flag (§4).
func NewSession(dumpAST bool, out, errw io.Writer) *Session {
	return &Session{file: "<repl>", dumpAST: dumpAST, out: out, err: errw}
}

// Eval appends line to the session's source and recompiles the whole
// accumulated program. On failure the line is rolled back so a typo
// doesn't permanently poison the session.
func (s *Session) Eval(line string) diag.List {
	candidate := append(append([]byte{}, s.source...), []byte(line+"\n")...)
	s.lastTried = candidate
	result := compiler.Compile(s.file, candidate)
	if result.Diagnostics.HasErrors() {
		return result.Diagnostics
	}
	s.source = candidate
	if s.dumpAST {
		fmt.Fprintln(s.out, repr.String(result.Module, repr.Indent("  ")))
	}
	return nil
}

// Buffer returns a source.Buffer over the text of the most recent Eval
// call, so a caller can render that call's diagnostics against the
// right line numbers (the whole session so far, not just the new line).
func (s *Session) Buffer() *source.Buffer {
	return source.New(s.file, s.lastTried)
}

// Run drives the prompt loop until the user sends EOF (Ctrl-D) or an I/O
// error occurs, persisting line history across invocations the way
// RunPrompt's liner.Liner does.
func Run(dumpAST bool) error {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if err := os.MkdirAll(filepath.Dir(historyPath), os.ModePerm); err != nil {
			return
		}
		if f, err := os.Create(historyPath); err == nil {
			defer f.Close()
			line.WriteHistory(f)
		}
	}()

	sess := NewSession(dumpAST, os.Stdout, os.Stderr)
	for {
		input, err := line.Prompt("arctic> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		line.AppendHistory(input)

		if diags := sess.Eval(input); diags != nil {
			diags.RenderAll(sess.err, sess.Buffer())
		} else {
			fmt.Fprintln(sess.out, "ok")
		}
	}
}
