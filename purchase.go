package pool

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags the three flavours of Purchase.
type Kind int

const (
	// KindPurchase is an expense paid by one member and shared by recipients.
	KindPurchase Kind = iota
	// KindTransfer is a direct payment to exactly one recipient.
	KindTransfer
	// KindBalance is a suggested settlement. It is a transfer that is never
	// linked into members and never changes a balance.
	KindBalance
)

func (k Kind) String() string {
	switch k {
	case KindPurchase:
		return "purchase"
	case KindTransfer:
		return "transfer"
	case KindBalance:
		return "balance"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "purchase":
		return KindPurchase, nil
	case "transfer":
		return KindTransfer, nil
	case "balance":
		return KindBalance, nil
	default:
		return 0, fmt.Errorf("unknown kind: %q", s)
	}
}

// linked reports whether entries of kind k register into their members.
func (k Kind) linked() bool { return k != KindBalance }

// pendingBalanceTitle is the title of every Balance.
const pendingBalanceTitle = "Pending balance"

// Purchase is an amount paid by a purchaser on behalf of recipients.
//
// Transfers and Balances are Purchases too, told apart by their Kind.
type Purchase struct {
	kind       Kind
	title      string
	purchaser  *Member
	recipients []*Member // unique, in given order
	amount     decimal.Decimal
	currency   Currency
	date       time.Time
	stamp      time.Time
}

func (p *Purchase) Kind() Kind { return p.kind }

// Linked reports whether p is registered in its members' participations.
func (p *Purchase) Linked() bool { return p.kind.linked() }

func (p *Purchase) Title() string         { return p.title }
func (p *Purchase) Purchaser() *Member    { return p.purchaser }
func (p *Purchase) Recipients() []*Member { return slices.Clone(p.recipients) }
func (p *Purchase) Currency() Currency    { return p.currency }
func (p *Purchase) Date() time.Time       { return p.date }

// Amount returns the amount in the currency it was paid in.
func (p *Purchase) Amount() Money { return Money{value: p.amount, cur: p.currency} }

// Stamp returns the time the entry was recorded.
func (p *Purchase) Stamp() time.Time { return p.stamp }

// SetStamp overrides the recording time, e.g. when restoring a document.
func (p *Purchase) SetStamp(t time.Time) { p.stamp = truncate(t) }

// RecipientNames returns the recipients' names in order.
func (p *Purchase) RecipientNames() []string {
	names := make([]string, len(p.recipients))
	for i, r := range p.recipients {
		names[i] = r.name
	}
	return names
}

func (p *Purchase) NumberOfRecipients() int    { return len(p.recipients) }
func (p *Purchase) IsPurchaser(m *Member) bool { return p.purchaser == m }
func (p *Purchase) IsRecipient(m *Member) bool { return slices.Contains(p.recipients, m) }

// touched returns the distinct members involved in p, purchaser first.
func (p *Purchase) touched() []*Member {
	members := make([]*Member, 0, len(p.recipients)+1)
	members = append(members, p.purchaser)
	for _, r := range p.recipients {
		if !slices.Contains(members, r) {
			members = append(members, r)
		}
	}
	return members
}

// String renders "title purchaser: amount -> recipients".
func (p *Purchase) String() string {
	return fmt.Sprintf("%s %s: %s -> %s",
		p.title, p.purchaser.name, p.Amount(), strings.Join(p.RecipientNames(), ", "))
}

// Describe is String with the date written with f.
func (p *Purchase) Describe(f Format) string {
	return fmt.Sprintf("%s (%s) %s: %s -> %s",
		p.title, f.Stamp(p.date), p.purchaser.name, p.Amount(),
		strings.Join(p.RecipientNames(), ", "))
}
