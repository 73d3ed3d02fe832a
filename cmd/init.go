package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/etnz/moneypool/store"
	"github.com/google/subcommands"
)

type initCmd struct {
	name        string
	description string
	currency    string
	force       bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new group" }
func (*initCmd) Usage() string {
	return `psplit init [-name <name>] [-description <text>] [-currency <code>] [-force]

  Creates a new, empty group. Missing values are asked for interactively.
  An existing group is never overwritten unless -force is given.

Usage Examples:
$ psplit init -name "Summer trip" -currency EUR

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the group.")
	f.StringVar(&c.description, "description", "", "Free text description.")
	f.StringVar(&c.currency, "currency", "", "Currency the group reports in (e.g. EUR).")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing group.")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := NewPrompter(stdin, stdout)
	var err error
	if c.name == "" {
		if c.name, err = p.Ask("Group name", ""); err != nil {
			fmt.Fprintf(stderr, "Error: a group name is required: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.description == "" {
		if c.description, err = p.Ask("Description", "-"); err != nil {
			fmt.Fprintf(stderr, "Error reading description: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.description == "-" {
			c.description = ""
		}
	}
	if c.currency == "" {
		if c.currency, err = p.Ask("Currency", pool.EUR.Code()); err != nil {
			fmt.Fprintf(stderr, "Error reading currency: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	cur, err := pool.ParseCurrency(c.currency)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	g, err := pool.NewGroup(c.name, c.description, cur)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating group: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if !c.force {
		_, err := s.Load(ctx)
		if err == nil {
			fmt.Fprintln(stderr, "Error: a group already exists, use -force to overwrite it.")
			return subcommands.ExitFailure
		}
		if !errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(stderr, "Error checking the existing group: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := s.Save(ctx, g); err != nil {
		fmt.Fprintf(stderr, "Error saving group: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Created group %q in %s.\n", g.Name(), g.Currency())
	return subcommands.ExitSuccess
}
