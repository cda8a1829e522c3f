// Package repl implements the ad hoc exploration mode of computectl: a
// reader that pulls one line at a time from either a GNU-readline-backed
// terminal or a plain buffered stream, the same CommandReader split tunaq's
// internal/input package uses for its game loop input.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/yosuke-oka/understanding-computation/internal/compute/regex"
)

// Reader pulls one command line at a time. Both concrete implementations
// below satisfy it.
type Reader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectReader reads lines from any io.Reader, unconditionally — used for
// piped/non-tty input.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps r for line-at-a-time reading.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

func (d *DirectReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *DirectReader) Close() error { return nil }

// InteractiveReader reads lines using GNU-readline-style editing and
// history, for use when stdin/stdout are both a tty.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session with the given prompt.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

func (i *InteractiveReader) ReadLine() (string, error) {
	line, err := i.rl.Readline()
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (i *InteractiveReader) Close() error { return i.rl.Close() }

// Run drives r to a fixpoint of "quit"/EOF, interpreting each nonblank line
// as "<regex-source> <test-string>" and printing whether the parsed pattern
// matches the string. A malformed regex reports its parse error and
// continues — one bad line does not end the session.
func Run(w io.Writer, r Reader) error {
	fmt.Fprintln(w, `computectl interactive mode: enter "<regex> <string>" to test a match, or "quit" to exit.`)
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}

		src, input, ok := splitCommand(line)
		if !ok {
			fmt.Fprintln(w, `  expected "<regex> <string>"`)
			continue
		}

		matched, err := regex.ParseAndMatch(src, input)
		if err != nil {
			fmt.Fprintf(w, "  parse error: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "  match(%q, %q) = %t\n", src, input, matched)
	}
}

// splitCommand splits "<regex> <string>" on the first space so a regex
// source may itself contain no spaces (the grammar forbids them) while the
// test string that follows is taken whole.
func splitCommand(line string) (src, input string, ok bool) {
	idx := strings.Index(line, " ")
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+1:], true
}
