package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type settleCmd struct {
	all bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "list or apply the pending balances" }
func (*settleCmd) Usage() string {
	return `psplit settle [-all]

  Lists the transfers that would bring every balance back to zero. With
  -all, records them as transfers.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Record every pending balance as a transfer.")
}

func (c *settleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.all {
		s, g, err := LoadGroup(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading group: %v\n", err)
			return subcommands.ExitFailure
		}
		defer s.Close()
		pending := g.PendingBalances()
		if len(pending) == 0 {
			fmt.Fprintln(stdout, "Everybody is settled.")
		}
		for _, b := range pending {
			fmt.Fprintf(stdout, "%s pays %s to %s\n", b.Purchaser(), b.Amount(), b.Recipients()[0])
		}
		return subcommands.ExitSuccess
	}

	err := update(ctx, func(g *pool.Group) error {
		transfers, err := g.SettleAll()
		if err != nil {
			return err
		}
		for _, t := range transfers {
			fmt.Fprintf(stdout, "Recorded transfer %s\n", t.Describe(format))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error settling: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
