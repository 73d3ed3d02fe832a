package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type undoCmd struct {
	kind string
}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "remove the latest purchase or transfer" }
func (*undoCmd) Usage() string {
	return `psplit undo [-kind purchase|transfer]

  Removes the most recent purchase (or transfer) from the group.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "purchase", "Kind of entry to remove: purchase or transfer.")
}

func (c *undoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := pool.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	err = update(ctx, func(g *pool.Group) error {
		p, err := g.RevertLast(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Removed %s %s\n", kind, p.Describe(format))
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error undoing: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
