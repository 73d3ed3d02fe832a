package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the short form of the report: balances and what
// is left to settle.
func SummaryMarkdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Name)
	doc.PlainText(fmt.Sprintf("Turnover: %s", md.Bold(r.Turnover)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Member", "Balance"},
	}
	for _, m := range r.Members {
		table.Rows = append(table.Rows, []string{m.Name, m.Balance})
	}
	doc.Table(table)

	doc.H2("Pending Balances")
	if len(r.Pending) == 0 {
		doc.PlainText("Everybody is settled.")
		return doc.String()
	}
	var lines []string
	for _, p := range r.Pending {
		lines = append(lines, fmt.Sprintf("%s pays %s to %s", p.Purchaser, md.Bold(p.Amount), p.Recipients))
	}
	doc.BulletList(lines...)
	return doc.String()
}
