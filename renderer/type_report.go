package renderer

import (
	"strings"

	"github.com/etnz/moneypool"
)

// Report is the printable state of a group. Every figure is already
// formatted; amounts in another currency also carry their value in the
// group currency.
type Report struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Currency    string   `json:"currency"`
	Stamp       string   `json:"stamp"`
	Turnover    string   `json:"turnover"`
	Rates       []Rate   `json:"rates"`
	Members     []Member `json:"members"`
	Purchases   []Entry  `json:"purchases"`
	Transfers   []Entry  `json:"transfers"`
	Pending     []Entry  `json:"pending"`
}

// Rate is one row of the exchange rates table.
type Rate struct {
	Currency string `json:"currency"`
	Name     string `json:"name"`
	Rate     string `json:"rate"`
}

// Member is one row of the members table.
type Member struct {
	Name           string `json:"name"`
	Participations int    `json:"participations"`
	Paid           string `json:"paid"`
	Share          string `json:"share"`
	Balance        string `json:"balance"`
}

// Entry is a purchase, a transfer or a pending balance.
type Entry struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Purchaser  string `json:"purchaser"`
	Recipients string `json:"recipients"`
	Amount     string `json:"amount"`
	Converted  string `json:"converted,omitempty"` // in group currency, when it differs
}

// NewReport collects the figures of g.
func NewReport(g *pool.Group, f pool.Format) *Report {
	r := &Report{
		Name:        g.Name(),
		Description: g.Description(),
		Currency:    g.Currency().Code(),
		Stamp:       f.Stamp(g.Stamp()),
		Turnover:    g.Turnover().String(),
	}
	for _, rate := range g.ExchangeRates() {
		r.Rates = append(r.Rates, Rate{
			Currency: rate.Currency.Code(),
			Name:     rate.Currency.Name(),
			Rate:     rate.Rate.String(),
		})
	}
	for _, s := range g.Stats() {
		r.Members = append(r.Members, Member{
			Name:           cell(s.Member.Name()),
			Participations: s.Member.NumberOfParticipations(),
			Paid:           s.Paid.String(),
			Share:          s.Share.String(),
			Balance:        s.Balance.SignedString(),
		})
	}
	r.Purchases = entries(g, f, g.Purchases())
	r.Transfers = entries(g, f, g.Transfers())
	r.Pending = entries(g, f, g.PendingBalances())
	return r
}

func entries(g *pool.Group, f pool.Format, list []*pool.Purchase) []Entry {
	var rows []Entry
	for _, p := range list {
		e := Entry{
			Date:       f.Stamp(p.Date()),
			Title:      cell(p.Title()),
			Purchaser:  cell(p.Purchaser().Name()),
			Recipients: cell(strings.Join(p.RecipientNames(), ", ")),
			Amount:     p.Amount().String(),
		}
		if p.Currency() != g.Currency() {
			e.Converted = g.AmountInGroupCurrency(p).String()
		}
		rows = append(rows, e)
	}
	return rows
}

// cell escapes the pipes that would break a markdown table.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
