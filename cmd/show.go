package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	plain bool
	short bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the group report" }
func (*showCmd) Usage() string {
	return `psplit show [-plain] [-short]

  Displays the group: turnover, exchange rates, members with their balance,
  purchases, transfers and the pending balances that would settle the group.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown, without terminal styles.")
	f.BoolVar(&c.short, "short", false, "Only print balances and pending balances.")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, g, err := LoadGroup(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading group: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	report := renderer.NewReport(g, format)
	if c.short {
		printMarkdown(renderer.SummaryMarkdown(report), c.plain)
	} else {
		printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{}), c.plain)
	}
	return subcommands.ExitSuccess
}
