// Package prompt provides interactive confirmation prompts. A prompt
// returns its eventual answer as an explicit result, so callers chain on
// the outcome instead of wiring callbacks.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user yes/no questions.
type Prompter interface {
	// Confirm asks a question and returns the answer. Only "y" or "yes"
	// (case-insensitive) confirm; anything else, including EOF, declines.
	Confirm(question string) (bool, error)
}

// Reader is a Prompter reading answers line by line from an input stream.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter.
func (r *Reader) Confirm(question string) (bool, error) {
	fmt.Fprintf(r.out, "%s [y/N] ", question)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
