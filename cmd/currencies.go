package cmd

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type currenciesCmd struct {
	bySymbol bool
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the supported currencies" }
func (*currenciesCmd) Usage() string {
	return `psplit currencies [-by-symbol]

  Lists the supported currencies with their symbol.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.bySymbol, "by-symbol", false, "Sort by symbol instead of the default order.")
}

func (c *currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list := pool.Currencies()
	if c.bySymbol {
		pool.SortBySymbol(list)
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, cur := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cur.Code(), cur.Symbol(), cur.Name())
	}
	w.Flush()
	return subcommands.ExitSuccess
}
