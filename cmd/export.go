package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneypool/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output   string
	markdown bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the group report as HTML or markdown" }
func (*exportCmd) Usage() string {
	return `psplit export [-o <file>] [-md]

  Writes the full group report as a standalone HTML page (or markdown with
  -md), to stdout or to the given file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
	f.BoolVar(&c.markdown, "md", false, "Write markdown instead of HTML.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, g, err := LoadGroup(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading group: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	md := renderer.RenderReport(renderer.NewReport(g, format), renderer.ReportRenderOptions{})

	w := stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if c.markdown {
		_, err = fmt.Fprint(w, md)
	} else {
		err = renderer.HTML(w, g.Name(), md)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(stderr, "Report written to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
