package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type purchaseCmd struct {
	entryFlags
	all bool
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record an expense shared by members" }
func (*purchaseCmd) Usage() string {
	return `psplit purchase -p <purchaser> (-r <a;b;...> | -all) -a <amount> [-c <currency>] [-t <title>] [-d <date>]

  Records that the purchaser paid the amount on behalf of the recipients,
  who share it equally. A foreign currency needs an exchange rate first
  (see 'psplit rate').

Usage Examples:
$ psplit purchase -t Pizza -p Alice -r "Alice;Bob" -a 24
$ psplit purchase -t Boat -p Bob -all -a 120 -c USD -d -1d

`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	c.entryFlags.setFlags(f, "Recipients, separated by ';' or ','.")
	f.BoolVar(&c.all, "all", false, "Share among every member.")
}

func (c *purchaseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := update(ctx, func(g *pool.Group) error {
		if c.all {
			c.recipient = "*"
		}
		v, err := c.parse(g)
		if err != nil {
			return err
		}
		recipients := splitNames(c.recipient)
		if c.all {
			recipients = g.MemberNames()
		}
		p, err := g.AddPurchase(c.title, c.purchaser, recipients, v.amount, v.currency, v.date)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Recorded purchase %s\n", p.Describe(format))
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error recording purchase: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
