package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the group document into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `psplit fmt

  Validates the group document and writes it back in its canonical form:
  fixed key order, currency codes, and stamps in the dd.MM.yyyy format.

Usage Examples:
$ psplit -f trip.json fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// loading validates, saving formats
	err := update(ctx, func(g *pool.Group) error { return nil })
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not format the group: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "✅ Successfully formatted the group.\n")
	return subcommands.ExitSuccess
}
