package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type memberCmd struct{}

func (*memberCmd) Name() string     { return "member" }
func (*memberCmd) Synopsis() string { return "add members to the group" }
func (*memberCmd) Usage() string {
	return `psplit member [<name>...]

  Adds members to the group. Without arguments, names are asked for one per
  line until an empty line.
`
}

func (c *memberCmd) SetFlags(f *flag.FlagSet) {}

func (c *memberCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := update(ctx, func(g *pool.Group) error {
		add := func(name string) error {
			if _, err := g.AddMember(name); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Added member %q.\n", name)
			return nil
		}
		if f.NArg() == 0 {
			return NewPrompter(stdin, stdout).Loop("Member name (empty to stop)", add)
		}
		for _, name := range f.Args() {
			if err := add(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error adding members: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
