package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type transferCmd struct {
	entryFlags
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record money given directly to a member" }
func (*transferCmd) Usage() string {
	return `psplit transfer -p <purchaser> -r <recipient> -a <amount> [-c <currency>] [-t <title>] [-d <date>]

  Records that the purchaser gave the amount to the recipient, e.g. to pay
  back a debt.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.entryFlags.setFlags(f, "Recipient of the transfer.")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := update(ctx, func(g *pool.Group) error {
		v, err := c.parse(g)
		if err != nil {
			return err
		}
		t, err := g.AddTransfer(c.title, c.purchaser, c.recipient, v.amount, v.currency, v.date)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Recorded transfer %s\n", t.Describe(format))
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error recording transfer: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
