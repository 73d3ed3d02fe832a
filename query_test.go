package pool

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	doc := referenceGroup(t).ToDocument(DefaultFormat)

	testCases := []struct {
		path string
		want any
	}{
		{"$.name", "MoneyPool"},
		{"$.members[1].name", "member_2"},
		{"$.purchases[*].title", []any{"purchase_1", "purchase_2", "purchase_3"}},
		{"$.transfers[0].recipients", []any{"member_1"}},
		{"$.exchange_rates.USD", 1.19},
	}
	for _, tc := range testCases {
		got, err := Query(doc, tc.path)
		if err != nil {
			t.Errorf("Query(%q) returned an unexpected error: %v", tc.path, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Query(%q) mismatch (-want +got):\n%s", tc.path, diff)
		}
	}

	if _, err := Query(doc, "$.["); err == nil {
		t.Error("Query() with an invalid path expected an error, got nil")
	}
}
