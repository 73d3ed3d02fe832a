package pool

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// at is a helper for tests to build a time from a stamp.
func at(s string) time.Time {
	t, err := DefaultFormat.ParseStamp(s)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// newTestGroup creates a group with a frozen clock and the given members.
func newTestGroup(t *testing.T, cur Currency, members ...string) *Group {
	t.Helper()
	g, err := NewGroup("Test", "", cur)
	if err != nil {
		t.Fatalf("NewGroup() returned an unexpected error: %v", err)
	}
	frozen := at("01.08.2025 12:00:00")
	g.now = func() time.Time { return frozen }
	g.SetStamp(frozen)
	for _, name := range members {
		if _, err := g.AddMember(name); err != nil {
			t.Fatalf("AddMember(%q) returned an unexpected error: %v", name, err)
		}
	}
	return g
}

// purchase is a helper for tests to add a purchase that must succeed.
func purchase(t *testing.T, g *Group, purchaser string, recipients []string, amount float64, cur Currency) *Purchase {
	t.Helper()
	p, err := g.AddPurchase("test", purchaser, recipients, D(amount), cur, at("01.08.2025"))
	if err != nil {
		t.Fatalf("AddPurchase(%q, %v, %v) returned an unexpected error: %v", purchaser, recipients, amount, err)
	}
	return p
}

// balance is a helper for tests returning a member's balance as a decimal.
func balance(t *testing.T, g *Group, name string) decimal.Decimal {
	t.Helper()
	b, err := g.Balance(name)
	if err != nil {
		t.Fatalf("Balance(%q) returned an unexpected error: %v", name, err)
	}
	return b.Value()
}

// near reports whether a and b are equal within floating rounding.
func near(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(decimal.New(1, -9))
}

// referenceGroup builds the group persisted in testdata/pool.json.
func referenceGroup(t *testing.T) *Group {
	t.Helper()
	g, err := NewGroup("MoneyPool", "A money pool split.", EUR)
	if err != nil {
		t.Fatal(err)
	}
	g.SetStamp(at("23.06.2021 07:53:55"))
	if err := g.SetExchangeRate(USD, D(1.19)); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"member_1", "member_2"} {
		m, err := g.AddMember(name)
		if err != nil {
			t.Fatal(err)
		}
		m.SetStamp(at("23.06.2021 07:53:55"))
	}

	entries := []struct {
		kind       Kind
		title      string
		recipients []string
		amount     float64
		cur        Currency
		date       string
		stamp      string
	}{
		{KindPurchase, "purchase_1", []string{"member_1", "member_2"}, 100, EUR, "23.06.2021 07:54:09", "23.06.2021 07:54:12"},
		{KindPurchase, "purchase_2", []string{"member_2"}, 100, EUR, "23.06.2021 07:54:21", "23.06.2021 07:54:22"},
		{KindPurchase, "purchase_3", []string{"member_1", "member_2"}, 200, USD, "23.06.2021 07:57:19", "23.06.2021 07:57:19"},
		{KindTransfer, "transfer_1", []string{"member_1"}, 200, USD, "23.06.2021", "23.06.2021 07:57:19"},
	}
	for _, e := range entries {
		var p *Purchase
		var err error
		if e.kind == KindTransfer {
			p, err = g.AddTransfer(e.title, "member_1", e.recipients[0], D(e.amount), e.cur, at(e.date))
		} else {
			p, err = g.AddPurchase(e.title, "member_1", e.recipients, D(e.amount), e.cur, at(e.date))
		}
		if err != nil {
			t.Fatalf("adding %s returned an unexpected error: %v", e.title, err)
		}
		p.SetStamp(at(e.stamp))
	}
	return g
}
