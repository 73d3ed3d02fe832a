package pool

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate states that one unit of the group currency is worth Rate
// units of Currency.
type ExchangeRate struct {
	Currency Currency
	Rate     decimal.Decimal
}

// Group is the aggregate root of a money pool.
//
// Members, purchases and transfers are kept in insertion order, which is
// significant for display and for a deterministic settlement. They are only
// ever changed through Group's methods.
type Group struct {
	name        string
	description string
	currency    Currency
	stamp       time.Time

	rates     []ExchangeRate // in first-set order
	members   []*Member
	byName    map[string]int // index in members
	purchases []*Purchase
	transfers []*Purchase

	now func() time.Time
}

// NewGroup creates an empty group reporting in currency.
func NewGroup(name, description string, currency Currency) (*Group, error) {
	if currency.IsZero() {
		return nil, &ValidationError{Field: "group currency", Value: "", Reason: "a currency is required"}
	}
	g := &Group{
		name:        name,
		description: description,
		currency:    currency,
		byName:      make(map[string]int),
		now:         time.Now,
	}
	g.stamp = truncate(g.now())
	return g, nil
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.description }
func (g *Group) Currency() Currency  { return g.currency }
func (g *Group) Stamp() time.Time    { return g.stamp }

// SetStamp overrides the creation time, e.g. when restoring a document.
func (g *Group) SetStamp(t time.Time) { g.stamp = truncate(t) }

// AddMember registers a new member. The name must be non blank and unique
// (exact, case sensitive match).
func (g *Group) AddMember(name string) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "member name", Value: name, Reason: "empty member name provided"}
	}
	if _, exists := g.byName[name]; exists {
		return nil, &ValidationError{Field: "member name", Value: name, Reason: "duplicate member name provided"}
	}
	m := &Member{name: name, stamp: truncate(g.now())}
	g.byName[name] = len(g.members)
	g.members = append(g.members, m)
	return m, nil
}

// Member returns the member with this name.
func (g *Group) Member(name string) (*Member, error) {
	i, ok := g.byName[name]
	if !ok {
		return nil, &LookupError{Kind: "member", Key: name}
	}
	return g.members[i], nil
}

// Members returns the members in insertion order.
func (g *Group) Members() []*Member { return slices.Clone(g.members) }

// MemberNames returns the members' names in insertion order.
func (g *Group) MemberNames() []string {
	names := make([]string, len(g.members))
	for i, m := range g.members {
		names[i] = m.name
	}
	return names
}

func (g *Group) NumberOfMembers() int { return len(g.members) }

// owns reports whether m is a member of g, and not a namesake from another group.
func (g *Group) owns(m *Member) bool {
	i, ok := g.byName[m.name]
	return ok && g.members[i] == m
}

// AddPurchase records that purchaser paid amount on behalf of recipients.
//
// Nothing is registered when an error is returned: the purchaser and every
// recipient must be members, recipients must be unique and non empty, amount
// must be positive, and currency must be the group currency or have an
// exchange rate.
func (g *Group) AddPurchase(title, purchaser string, recipients []string, amount decimal.Decimal, currency Currency, date time.Time) (*Purchase, error) {
	p, err := g.newEntry(KindPurchase, title, purchaser, recipients, amount, currency, date)
	if err != nil {
		return nil, err
	}
	g.purchases = append(g.purchases, p)
	g.link(p, entryRef{KindPurchase, len(g.purchases) - 1})
	return p, nil
}

// AddTransfer records that purchaser paid amount directly to recipient.
// It fails like AddPurchase.
func (g *Group) AddTransfer(title, purchaser, recipient string, amount decimal.Decimal, currency Currency, date time.Time) (*Purchase, error) {
	p, err := g.newEntry(KindTransfer, title, purchaser, []string{recipient}, amount, currency, date)
	if err != nil {
		return nil, err
	}
	g.transfers = append(g.transfers, p)
	g.link(p, entryRef{KindTransfer, len(g.transfers) - 1})
	return p, nil
}

// newEntry validates and resolves everything before anything is registered.
func (g *Group) newEntry(kind Kind, title, purchaser string, recipients []string, amount decimal.Decimal, currency Currency, date time.Time) (*Purchase, error) {
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Value: amount.String(), Reason: "must be positive"}
	}
	if _, err := g.rate(currency); err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, &ValidationError{Field: "recipients", Value: "", Reason: "at least one recipient is required"}
	}
	payer, err := g.Member(purchaser)
	if err != nil {
		return nil, err
	}
	resolved := make([]*Member, 0, len(recipients))
	for _, name := range recipients {
		r, err := g.Member(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(resolved, r) {
			return nil, &ValidationError{Field: "recipients", Value: name, Reason: "duplicate recipient"}
		}
		resolved = append(resolved, r)
	}
	return &Purchase{
		kind:       kind,
		title:      title,
		purchaser:  payer,
		recipients: resolved,
		amount:     amount,
		currency:   currency,
		date:       truncate(date),
		stamp:      truncate(g.now()),
	}, nil
}

// link registers p into every distinct member it touches. Balances are
// never linked.
func (g *Group) link(p *Purchase, ref entryRef) {
	if !p.Linked() {
		return
	}
	for _, m := range p.touched() {
		m.addParticipation(ref)
	}
}

// unlink is the inverse of link.
func (g *Group) unlink(p *Purchase, ref entryRef) {
	if !p.Linked() {
		return
	}
	for _, m := range p.touched() {
		m.removeParticipation(ref)
	}
}

// entry resolves a participation reference.
func (g *Group) entry(ref entryRef) *Purchase {
	if ref.kind == KindTransfer {
		return g.transfers[ref.index]
	}
	return g.purchases[ref.index]
}

// Purchases returns the purchases in insertion order.
func (g *Group) Purchases() []*Purchase { return slices.Clone(g.purchases) }

// Transfers returns the transfers in insertion order.
func (g *Group) Transfers() []*Purchase { return slices.Clone(g.transfers) }

// RevertLast removes the most recent purchase (or transfer) and unlinks it
// from its members. It is the only way an entry ever leaves a group.
func (g *Group) RevertLast(kind Kind) (*Purchase, error) {
	var list *[]*Purchase
	switch kind {
	case KindPurchase:
		list = &g.purchases
	case KindTransfer:
		list = &g.transfers
	default:
		return nil, &ValidationError{Field: "kind", Value: kind.String(), Reason: "only purchases and transfers can be reverted"}
	}
	n := len(*list)
	if n == 0 {
		return nil, &LookupError{Kind: kind.String(), Key: "latest"}
	}
	p := (*list)[n-1]
	g.unlink(p, entryRef{kind, n - 1})
	*list = (*list)[:n-1]
	return p, nil
}

// SetExchangeRate sets (or replaces) the rate of currency: one unit of the
// group currency is worth rate units of currency. A rate for the group
// currency is kept but never used, Exchange is the identity for it.
func (g *Group) SetExchangeRate(currency Currency, rate decimal.Decimal) error {
	if currency.IsZero() {
		return &ValidationError{Field: "exchange rate currency", Value: "", Reason: "a currency is required"}
	}
	if !rate.IsPositive() {
		return &ValidationError{Field: "exchange rate", Value: rate.String(), Reason: "must be positive"}
	}
	for i, r := range g.rates {
		if r.Currency == currency {
			g.rates[i].Rate = rate
			return nil
		}
	}
	g.rates = append(g.rates, ExchangeRate{Currency: currency, Rate: rate})
	return nil
}

// ExchangeRates returns the rates in the order they were first set.
func (g *Group) ExchangeRates() []ExchangeRate { return slices.Clone(g.rates) }

// rate returns the rate of currency, 1 for the group currency.
func (g *Group) rate(currency Currency) (decimal.Decimal, error) {
	if currency == g.currency {
		return decimal.NewFromInt(1), nil
	}
	for _, r := range g.rates {
		if r.Currency == currency {
			return r.Rate, nil
		}
	}
	return decimal.Decimal{}, &LookupError{Kind: "exchange rate", Key: currency.code}
}

// Exchange converts amount from currency into the group currency.
func (g *Group) Exchange(amount decimal.Decimal, currency Currency) (decimal.Decimal, error) {
	if currency == g.currency {
		return amount, nil
	}
	r, err := g.rate(currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Div(r), nil
}

// inGroupCurrency converts a registered entry. Its rate was checked on
// registration and rates are never removed.
func (g *Group) inGroupCurrency(p *Purchase) decimal.Decimal {
	v, err := g.Exchange(p.amount, p.currency)
	if err != nil {
		panic("registered entry without exchange rate: " + err.Error())
	}
	return v
}

// AmountInGroupCurrency returns the amount of p converted with the current rates.
func (g *Group) AmountInGroupCurrency(p *Purchase) Money {
	return Money{value: g.inGroupCurrency(p), cur: g.currency}
}

// AmountPerRecipient returns each recipient's share of p in group currency.
func (g *Group) AmountPerRecipient(p *Purchase) Money {
	share := g.inGroupCurrency(p).Div(decimal.NewFromInt(int64(len(p.recipients))))
	return Money{value: share, cur: g.currency}
}

// Turnover sums the purchases in group currency. Transfers are not expenses
// and are left out.
func (g *Group) Turnover() Money {
	total := decimal.Zero
	for _, p := range g.purchases {
		total = total.Add(g.inGroupCurrency(p))
	}
	return Money{value: total, cur: g.currency}
}

// MemberStats splits a member's balance into what it paid and what it owes.
type MemberStats struct {
	Member  *Member
	Paid    Money // amounts paid as purchaser
	Share   Money // shares received as recipient
	Balance Money // Paid - Share, positive when the member is owed money
}

// stats derives m's figures from its participations.
func (g *Group) stats(m *Member) MemberStats {
	paid, share := decimal.Zero, decimal.Zero
	for _, ref := range m.participations {
		p := g.entry(ref)
		amount := g.inGroupCurrency(p)
		if p.IsPurchaser(m) {
			paid = paid.Add(amount)
		}
		if p.IsRecipient(m) {
			share = share.Add(amount.Div(decimal.NewFromInt(int64(len(p.recipients)))))
		}
	}
	return MemberStats{
		Member:  m,
		Paid:    Money{value: paid, cur: g.currency},
		Share:   Money{value: share, cur: g.currency},
		Balance: Money{value: paid.Sub(share), cur: g.currency},
	}
}

// Stats returns every member's figures in insertion order.
func (g *Group) Stats() []MemberStats {
	stats := make([]MemberStats, len(g.members))
	for i, m := range g.members {
		stats[i] = g.stats(m)
	}
	return stats
}

// Balance returns the derived balance of the named member in group
// currency: positive when it is owed money, negative when it owes.
func (g *Group) Balance(name string) (Money, error) {
	m, err := g.Member(name)
	if err != nil {
		return Money{}, err
	}
	return g.stats(m).Balance, nil
}

// Balances returns every member's balance in insertion order.
func (g *Group) Balances() []Money {
	balances := make([]Money, len(g.members))
	for i, m := range g.members {
		balances[i] = g.stats(m).Balance
	}
	return balances
}
