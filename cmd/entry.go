package cmd

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/moneypool"
	"github.com/shopspring/decimal"
)

// entryFlags are the flags shared by purchase and transfer.
type entryFlags struct {
	title     string
	purchaser string
	recipient string
	amount    string
	currency  string
	date      string
}

func (e *entryFlags) setFlags(f *flag.FlagSet, recipientUsage string) {
	f.StringVar(&e.title, "t", "", "Title of the entry.")
	f.StringVar(&e.purchaser, "p", "", "Member who paid.")
	f.StringVar(&e.recipient, "r", "", recipientUsage)
	f.StringVar(&e.amount, "a", "", "Amount paid, e.g. 12.50 or 12,50.")
	f.StringVar(&e.currency, "c", "", "Currency of the amount. Defaults to the group currency.")
	f.StringVar(&e.date, "d", "0d", "Date of the entry. See 'psplit help' for supported formats.")
}

// parsed holds the typed values of entryFlags.
type parsed struct {
	amount   decimal.Decimal
	currency pool.Currency
	date     time.Time
}

func (e *entryFlags) parse(g *pool.Group) (parsed, error) {
	var p parsed
	if e.purchaser == "" || e.recipient == "" || e.amount == "" {
		return p, fmt.Errorf("-p, -r and -a are required")
	}
	var err error
	if p.amount, err = pool.ParseAmount(e.amount); err != nil {
		return p, fmt.Errorf("invalid amount %q: %w", e.amount, err)
	}
	p.currency = g.Currency()
	if e.currency != "" {
		if p.currency, err = pool.ParseCurrency(e.currency); err != nil {
			return p, err
		}
	}
	if p.date, err = format.ParseDate(e.date, time.Now()); err != nil {
		return p, err
	}
	return p, nil
}

// splitNames splits a list of names separated by ';' or ','.
func splitNames(s string) []string {
	var names []string
	for _, n := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' }) {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
