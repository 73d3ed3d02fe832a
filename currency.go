package pool

import (
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is an entry of the closed currency registry.
//
// Currencies are compared by value; the zero Currency is invalid.
type Currency struct {
	code string
	name string
}

// The registry, in declaration order.
var (
	EUR = Currency{"EUR", "Euro"}
	USD = Currency{"USD", "US Dollar"}
	GBP = Currency{"GBP", "Pound Sterling"}
	CHF = Currency{"CHF", "Swiss Franc"}
	JPY = Currency{"JPY", "Yen"}
	SEK = Currency{"SEK", "Swedish Krona"}
	NOK = Currency{"NOK", "Norwegian Krone"}
	DKK = Currency{"DKK", "Danish Krone"}
	PLN = Currency{"PLN", "Zloty"}
	CZK = Currency{"CZK", "Czech Koruna"}
	CAD = Currency{"CAD", "Canadian Dollar"}
	AUD = Currency{"AUD", "Australian Dollar"}
)

var registry = []Currency{EUR, USD, GBP, CHF, JPY, SEK, NOK, DKK, PLN, CZK, CAD, AUD}

// currencyIndex maps upper cased codes and names to registry entries.
var currencyIndex = func() map[string]Currency {
	idx := make(map[string]Currency, 2*len(registry))
	for _, c := range registry {
		idx[strings.ToUpper(c.code)] = c
		idx[strings.ToUpper(c.name)] = c
	}
	return idx
}()

// Currencies returns the registry in declaration order.
func Currencies() []Currency { return slices.Clone(registry) }

// ParseCurrency looks a currency up by its code, or by its name for older
// documents that stored "Euro". Matching ignores case.
func ParseCurrency(s string) (Currency, error) {
	c, ok := currencyIndex[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return Currency{}, &LookupError{Kind: "currency", Key: s}
	}
	return c, nil
}

// SortBySymbol sorts currencies by display symbol, then by code.
func SortBySymbol(cs []Currency) {
	slices.SortStableFunc(cs, func(a, b Currency) int {
		if c := strings.Compare(a.Symbol(), b.Symbol()); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})
}

// Code returns the ISO 4217 code, the persisted form of the currency.
func (c Currency) Code() string { return c.code }

// Name returns the English name of the currency.
func (c Currency) Name() string { return c.name }

// IsZero reports whether c is the invalid zero Currency.
func (c Currency) IsZero() bool { return c.code == "" }

// Symbol returns the display symbol, e.g. "€".
func (c Currency) Symbol() string { return c.meta().Grapheme }

// Fraction returns the number of minor unit digits, e.g. 2 for cents.
func (c Currency) Fraction() int { return c.meta().Fraction }

func (c Currency) String() string { return c.code }

// meta returns go-money's metadata, never nil.
func (c Currency) meta() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, c.code).Currency()
}
