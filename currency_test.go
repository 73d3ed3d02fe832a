package pool

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		input string
		want  Currency
	}{
		{"EUR", EUR},
		{"usd", USD},
		{" GBP ", GBP},
		{"Euro", EUR}, // older documents stored the name
		{"swiss franc", CHF},
	}
	for _, tc := range testCases {
		got, err := ParseCurrency(tc.input)
		if err != nil {
			t.Errorf("ParseCurrency(%q) returned an unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	_, err := ParseCurrency("XYZ")
	var lerr *LookupError
	if !errors.As(err, &lerr) || lerr.Kind != "currency" {
		t.Errorf("ParseCurrency(\"XYZ\") got error %v, want a currency *LookupError", err)
	}
}

func TestCurrency_Metadata(t *testing.T) {
	if got := EUR.Symbol(); got != "€" {
		t.Errorf("EUR.Symbol() = %q, want %q", got, "€")
	}
	if got := USD.Symbol(); got != "$" {
		t.Errorf("USD.Symbol() = %q, want %q", got, "$")
	}
	if got := JPY.Fraction(); got != 0 {
		t.Errorf("JPY.Fraction() = %d, want 0", got)
	}
	if got := EUR.Fraction(); got != 2 {
		t.Errorf("EUR.Fraction() = %d, want 2", got)
	}
}

func TestCurrencies(t *testing.T) {
	list := Currencies()
	if len(list) < 2 || list[0] != EUR || list[1] != USD {
		t.Fatalf("Currencies() = %v, want declaration order starting with EUR, USD", list)
	}
	// Callers cannot alter the registry.
	list[0] = JPY
	if Currencies()[0] != EUR {
		t.Error("Currencies() returned the registry itself")
	}
}

func TestSortBySymbol(t *testing.T) {
	list := []Currency{USD, EUR, CAD, AUD}
	SortBySymbol(list)
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		if c := strings.Compare(a.Symbol(), b.Symbol()); c > 0 || (c == 0 && a.Code() > b.Code()) {
			t.Errorf("SortBySymbol() got %v before %v", a, b)
		}
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want []string
	}{
		{M(50, EUR), []string{"€", "50.00"}},
		{M(1234.5, USD), []string{"$", "1,234.50"}},
		{M(100.0/3, EUR), []string{"33.33"}},
	}
	for _, tc := range testCases {
		got := tc.m.String()
		for _, w := range tc.want {
			if !strings.Contains(got, w) {
				t.Errorf("%v.String() = %q, want it to contain %q", tc.m.Value(), got, w)
			}
		}
	}

	if got := M(0.001, EUR).SignedString(); got != "-" {
		t.Errorf("SignedString() of a rounded zero = %q, want %q", got, "-")
	}
	if got := M(5, EUR).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString() of a positive amount = %q, want a leading +", got)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD did not panic")
		}
	}()
	M(1, EUR).Add(M(1, USD))
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"12.5", "12.5", false},
		{"12,5", "12.5", false},
		{"100", "100", false},
		{"abc", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got.String() != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
