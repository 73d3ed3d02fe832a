package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneypool"
	"github.com/google/subcommands"
)

type rateCmd struct {
	currency string
	rate     string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "set or list exchange rates" }
func (*rateCmd) Usage() string {
	return `psplit rate [-c <currency> -r <rate>]

  Sets the exchange rate of a currency: one unit of the group currency is
  worth <rate> units of <currency>. Changing a rate revalues every past
  entry in that currency. Without flags, lists the rates.

Usage Examples:
$ psplit rate -c USD -r 1.19

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency to set the rate of.")
	f.StringVar(&c.rate, "r", "", "Units of the currency for one unit of the group currency.")
}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" && c.rate == "" {
		s, g, err := LoadGroup(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading group: %v\n", err)
			return subcommands.ExitFailure
		}
		defer s.Close()
		for _, r := range g.ExchangeRates() {
			fmt.Fprintf(stdout, "1 %s = %s %s\n", g.Currency(), r.Rate, r.Currency)
		}
		return subcommands.ExitSuccess
	}
	if c.currency == "" || c.rate == "" {
		fmt.Fprintln(stderr, "Error: -c and -r must be used together.")
		return subcommands.ExitUsageError
	}

	err := update(ctx, func(g *pool.Group) error {
		cur, err := pool.ParseCurrency(c.currency)
		if err != nil {
			return err
		}
		rate, err := pool.ParseAmount(c.rate)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", c.rate, err)
		}
		if err := g.SetExchangeRate(cur, rate); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "1 %s = %s %s\n", g.Currency(), rate, cur)
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error setting rate: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
