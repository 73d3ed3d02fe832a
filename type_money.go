package pool

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in one currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   Currency
}

// M builds a Money.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, cur Currency) Money {
	return Money{value: D(value), cur: cur}
}

// String returns the amount formatted the currency's way, e.g. "€50.00".
func (m Money) String() string {
	cur := m.cur.meta()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.Round(int32(m.cur.Fraction())).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) Currency() Currency     { return m.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }

// Add returns m+n, both must share the same currency.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// Sub returns m-n, both must share the same currency.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the zero currency totally weak.
func cur(a, b Money) Currency {
	if a.cur.IsZero() {
		return b.cur
	}
	if b.cur.IsZero() {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur.code + "!=" + b.cur.code)
	}
	return a.cur
}
