package pool

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Document is the canonical persisted form of a Group.
//
// Its JSON encoding keeps a fixed key order:
//
//	{name, description, currency, members, purchases, transfers, exchange_rates, stamp}
//
// Currencies are stored by code, amounts as JSON numbers and times as
// stamps (see Format).
type Document struct {
	Name          string
	Description   string
	Currency      string
	Members       []MemberRecord
	Purchases     []PurchaseRecord
	Transfers     []PurchaseRecord
	ExchangeRates []RateRecord // in first-set order
	Stamp         string
}

// MemberRecord is the persisted form of a Member.
type MemberRecord struct {
	Name  string
	Stamp string
}

// PurchaseRecord is the persisted form of a purchase or a transfer.
type PurchaseRecord struct {
	Purchaser  string
	Recipients []string
	Amount     decimal.Decimal
	Currency   string
	Date       string
	Title      string
	Stamp      string
}

// RateRecord is one entry of the "exchange_rates" object.
type RateRecord struct {
	Currency string
	Rate     decimal.Decimal
}

// ToDocument maps g to its persisted form.
func (g *Group) ToDocument(f Format) *Document {
	doc := &Document{
		Name:          g.name,
		Description:   g.description,
		Currency:      g.currency.code,
		Members:       make([]MemberRecord, len(g.members)),
		Purchases:     make([]PurchaseRecord, len(g.purchases)),
		Transfers:     make([]PurchaseRecord, len(g.transfers)),
		ExchangeRates: make([]RateRecord, len(g.rates)),
		Stamp:         f.Stamp(g.stamp),
	}
	for i, m := range g.members {
		doc.Members[i] = MemberRecord{Name: m.name, Stamp: f.Stamp(m.stamp)}
	}
	for i, p := range g.purchases {
		doc.Purchases[i] = purchaseRecord(p, f)
	}
	for i, t := range g.transfers {
		doc.Transfers[i] = purchaseRecord(t, f)
	}
	for i, r := range g.rates {
		doc.ExchangeRates[i] = RateRecord{Currency: r.Currency.code, Rate: r.Rate}
	}
	return doc
}

func purchaseRecord(p *Purchase, f Format) PurchaseRecord {
	return PurchaseRecord{
		Purchaser:  p.purchaser.name,
		Recipients: p.RecipientNames(),
		Amount:     p.amount,
		Currency:   p.currency.code,
		Date:       f.Stamp(p.date),
		Title:      p.title,
		Stamp:      f.Stamp(p.stamp),
	}
}

// FromDocument rebuilds a Group: rates first, then members with their
// original stamps, then purchases and transfers in their original order so
// that every reference resolves.
//
// Any inconsistency is reported as a *FormatError, wrapping the ledger error
// when there is one.
func FromDocument(doc *Document, f Format) (*Group, error) {
	cur, err := ParseCurrency(doc.Currency)
	if err != nil {
		return nil, &FormatError{Path: "currency", Err: err}
	}
	g, err := NewGroup(doc.Name, doc.Description, cur)
	if err != nil {
		return nil, &FormatError{Path: "currency", Err: err}
	}
	stamp, err := f.ParseStamp(doc.Stamp)
	if err != nil {
		return nil, &FormatError{Path: "stamp", Err: err}
	}
	g.SetStamp(stamp)

	for _, r := range doc.ExchangeRates {
		path := "exchange_rates." + r.Currency
		c, err := ParseCurrency(r.Currency)
		if err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		if err := g.SetExchangeRate(c, r.Rate); err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
	}

	for i, rec := range doc.Members {
		path := fmt.Sprintf("members[%d]", i)
		m, err := g.AddMember(rec.Name)
		if err != nil {
			return nil, &FormatError{Path: path + ".name", Err: err}
		}
		stamp, err := f.ParseStamp(rec.Stamp)
		if err != nil {
			return nil, &FormatError{Path: path + ".stamp", Err: err}
		}
		m.SetStamp(stamp)
	}

	for i, rec := range doc.Purchases {
		if err := g.restore(KindPurchase, fmt.Sprintf("purchases[%d]", i), rec, f); err != nil {
			return nil, err
		}
	}
	for i, rec := range doc.Transfers {
		if err := g.restore(KindTransfer, fmt.Sprintf("transfers[%d]", i), rec, f); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// restore re-adds a persisted purchase or transfer, which links it again.
func (g *Group) restore(kind Kind, path string, rec PurchaseRecord, f Format) error {
	c, err := ParseCurrency(rec.Currency)
	if err != nil {
		return &FormatError{Path: path + ".currency", Err: err}
	}
	date, err := f.ParseStamp(rec.Date)
	if err != nil {
		return &FormatError{Path: path + ".date", Err: err}
	}
	stamp, err := f.ParseStamp(rec.Stamp)
	if err != nil {
		return &FormatError{Path: path + ".stamp", Err: err}
	}

	var p *Purchase
	switch kind {
	case KindTransfer:
		if len(rec.Recipients) != 1 {
			return formatErrorf(path+".recipients", "a transfer has exactly one recipient, got %d", len(rec.Recipients))
		}
		p, err = g.AddTransfer(rec.Title, rec.Purchaser, rec.Recipients[0], rec.Amount, c, date)
	default:
		p, err = g.AddPurchase(rec.Title, rec.Purchaser, rec.Recipients, rec.Amount, c, date)
	}
	if err != nil {
		return &FormatError{Path: path, Err: err}
	}
	p.SetStamp(stamp)
	return nil
}

// MarshalJSON writes the document with its canonical key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var rates jsonObjectWriter
	for _, r := range d.ExchangeRates {
		rates.Append(r.Currency, json.Number(r.Rate.String()))
	}

	var w jsonObjectWriter
	w.Append("name", d.Name)
	w.Append("description", d.Description)
	w.Append("currency", d.Currency)
	w.Append("members", nonNil(d.Members))
	w.Append("purchases", nonNil(d.Purchases))
	w.Append("transfers", nonNil(d.Transfers))
	w.Append("exchange_rates", &rates)
	w.Append("stamp", d.Stamp)
	return w.MarshalJSON()
}

func (m MemberRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", m.Name)
	w.Append("stamp", m.Stamp)
	return w.MarshalJSON()
}

func (p PurchaseRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("purchaser", p.Purchaser)
	w.Append("recipients", nonNil(p.Recipients))
	w.Append("amount", json.Number(p.Amount.String()))
	w.Append("currency", p.Currency)
	w.Append("date", p.Date)
	w.Append("title", p.Title)
	w.Append("stamp", p.Stamp)
	return w.MarshalJSON()
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

// UnmarshalJSON reads a document strictly: every key is required and must
// have the expected type. Errors are *FormatError.
func (d *Document) UnmarshalJSON(data []byte) error {
	root, err := readObject("", data)
	if err != nil {
		return err
	}
	var doc Document
	if doc.Name, err = root.String("name"); err != nil {
		return err
	}
	if doc.Description, err = root.String("description"); err != nil {
		return err
	}
	if doc.Currency, err = root.String("currency"); err != nil {
		return err
	}
	if doc.Stamp, err = root.String("stamp"); err != nil {
		return err
	}

	members, err := root.Array("members")
	if err != nil {
		return err
	}
	for i, raw := range members {
		obj, err := readObject(fmt.Sprintf("members[%d]", i), raw)
		if err != nil {
			return err
		}
		var m MemberRecord
		if m.Name, err = obj.String("name"); err != nil {
			return err
		}
		if m.Stamp, err = obj.String("stamp"); err != nil {
			return err
		}
		doc.Members = append(doc.Members, m)
	}

	if doc.Purchases, err = readPurchases(root, "purchases"); err != nil {
		return err
	}
	if doc.Transfers, err = readPurchases(root, "transfers"); err != nil {
		return err
	}

	rates, err := root.Object("exchange_rates")
	if err != nil {
		return err
	}
	for _, code := range rates.keys {
		n, err := rates.Number(code)
		if err != nil {
			return err
		}
		rate, err := decimal.NewFromString(n.String())
		if err != nil {
			return formatErrorf(rates.at(code), "invalid rate: %w", err)
		}
		doc.ExchangeRates = append(doc.ExchangeRates, RateRecord{Currency: code, Rate: rate})
	}

	*d = doc
	return nil
}

func readPurchases(root *jsonObjectReader, key string) ([]PurchaseRecord, error) {
	items, err := root.Array(key)
	if err != nil {
		return nil, err
	}
	var list []PurchaseRecord
	for i, raw := range items {
		obj, err := readObject(fmt.Sprintf("%s[%d]", key, i), raw)
		if err != nil {
			return nil, err
		}
		var p PurchaseRecord
		if p.Purchaser, err = obj.String("purchaser"); err != nil {
			return nil, err
		}
		if p.Recipients, err = obj.Strings("recipients"); err != nil {
			return nil, err
		}
		n, err := obj.Number("amount")
		if err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(n.String()); err != nil {
			return nil, formatErrorf(obj.at("amount"), "invalid amount: %w", err)
		}
		if p.Currency, err = obj.String("currency"); err != nil {
			return nil, err
		}
		if p.Date, err = obj.String("date"); err != nil {
			return nil, err
		}
		if p.Title, err = obj.String("title"); err != nil {
			return nil, err
		}
		if p.Stamp, err = obj.String("stamp"); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}
