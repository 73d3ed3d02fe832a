package pool

import (
	"slices"

	"github.com/shopspring/decimal"
)

// position is a member's balance at the start of a settlement.
type position struct {
	member  *Member
	balance decimal.Decimal
}

// PendingBalances proposes the transfers that would bring every member's
// balance back to zero.
//
// Members are sorted by ascending balance (stable, so equal balances keep
// their insertion order). Each member, most indebted first, pays the members
// still owed something, most owed first. The amounts already assigned are
// accumulated per member so that nobody pays or receives twice.
//
// Amounts that are zero at 8 decimal places are not proposed, hence at most
// n-1 balances are returned for n members. The result is a list of Balances
// in group currency: they are not part of the group and change nothing until
// settled.
func (g *Group) PendingBalances() []*Purchase {
	sorted := make([]position, len(g.members))
	for i, m := range g.members {
		sorted[i] = position{member: m, balance: g.stats(m).Balance.value}
	}
	slices.SortStableFunc(sorted, func(a, b position) int { return a.balance.Cmp(b.balance) })

	assigned := make(map[*Member]decimal.Decimal, len(sorted))
	now := truncate(g.now())

	var balances []*Purchase
	for _, sender := range sorted {
		for i := len(sorted) - 1; i >= 0; i-- {
			receiver := sorted[i]
			if sender.member == receiver.member {
				continue
			}
			owes := sender.balance.Add(assigned[sender.member])
			owed := receiver.balance.Add(assigned[receiver.member])
			if !owed.IsPositive() {
				continue
			}
			amount := decimal.Min(owes.Abs(), owed)
			assigned[sender.member] = assigned[sender.member].Add(amount)
			assigned[receiver.member] = assigned[receiver.member].Sub(amount)
			if negligible(amount) {
				continue
			}
			balances = append(balances, &Purchase{
				kind:       KindBalance,
				title:      pendingBalanceTitle,
				purchaser:  sender.member,
				recipients: []*Member{receiver.member},
				amount:     amount,
				currency:   g.currency,
				date:       now,
				stamp:      now,
			})
		}
	}
	return balances
}

// Settle promotes a pending balance into a real transfer of the group.
func (g *Group) Settle(balance *Purchase) (*Purchase, error) {
	if balance.kind != KindBalance {
		return nil, &ValidationError{Field: "balance", Value: balance.title, Reason: "only a pending balance can be settled, got a " + balance.kind.String()}
	}
	for _, m := range balance.touched() {
		if !g.owns(m) {
			return nil, &LookupError{Kind: "member", Key: m.name}
		}
	}
	return g.AddTransfer(balance.title, balance.purchaser.name, balance.recipients[0].name, balance.amount, balance.currency, balance.date)
}

// SettleAll settles every pending balance and returns the new transfers.
func (g *Group) SettleAll() ([]*Purchase, error) {
	var transfers []*Purchase
	for _, b := range g.PendingBalances() {
		t, err := g.Settle(b)
		if err != nil {
			return transfers, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}
