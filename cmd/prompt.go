package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on a line based terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from r and writes questions to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Ask prints question and returns the trimmed answer, or def when the answer
// is empty. At the end of the input it returns def, or io.EOF when there is
// no default.
func (p *Prompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		if def != "" {
			return def, nil
		}
		return "", io.EOF
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Loop asks question until the answer is empty or the input ends, and calls
// fn with each answer. Errors from fn are printed and the loop goes on.
func (p *Prompter) Loop(question string, fn func(answer string) error) error {
	for {
		answer, err := p.Ask(question, "")
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return nil
		}
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		if err := fn(answer); err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
		}
	}
}
