package cmd

import (
	"fmt"
	"log/slog"

	"github.com/etnz/moneypool/logging"
	"github.com/etnz/moneypool/renderer"
)

// printMarkdown writes md to stdout, styled when stdout is a terminal and
// plain is false.
func printMarkdown(md string, plain bool) {
	if plain || !logging.IsTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := renderer.Terminal(md, 100)
	if err != nil {
		slog.Warn("cannot style markdown, printing it raw", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
