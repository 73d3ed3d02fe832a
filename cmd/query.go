package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the group document" }
func (*queryCmd) Usage() string {
	return `psplit query <jsonpath>

  Prints the result of a JSONPath expression evaluated over the group
  document, as JSON.

Usage Examples:
$ psplit query '$.purchases[*].title'
$ psplit query '$.purchases[?(@.purchaser == "Alice")].amount'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: query takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	s, g, err := LoadGroup(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading group: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	result, err := pool.Query(g.ToDocument(format), f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(data))
	return subcommands.ExitSuccess
}
