package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool/store"
	"github.com/google/subcommands"
)

type groupsCmd struct{}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list the groups of the store" }
func (*groupsCmd) Usage() string {
	return `psplit groups

  Lists the group keys of the SQLite database, the current one marked with
  '*'. With the file backend, prints the document path.
`
}

func (c *groupsCmd) SetFlags(f *flag.FlagSet) {}

func (c *groupsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	switch s := s.(type) {
	case *store.FileStore:
		fmt.Fprintln(stdout, s.Path())
	case *store.SQLiteStore:
		keys, err := s.Keys(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Error listing groups: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, k := range keys {
			mark := " "
			if k == s.Key() {
				mark = "*"
			}
			fmt.Fprintf(stdout, "%s %s\n", mark, k)
		}
	}
	return subcommands.ExitSuccess
}
