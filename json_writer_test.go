package pool

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("z", 1).Append("a", "x").Append("m", []string{"b"})
			},
			want: `{"z":1,"a":"x","m":["b"]}`,
		},
		{
			name: "escapes keys",
			build: func(w *jsonObjectWriter) {
				w.Append(`we"ird`, true)
			},
			want: `{"we\"ird":true}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJSONObjectWriter_Error(t *testing.T) {
	var w jsonObjectWriter
	w.Append("ch", make(chan int)).Append("ok", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() of an unsupported value expected an error, got nil")
	}
}

func TestJSONObjectReader(t *testing.T) {
	raw := json.RawMessage(`{"b": "x", "a": ["y", "z"], "n": 1.50, "o": {"k2": 1, "k1": 2}}`)

	r, err := readObject("root", raw)
	if err != nil {
		t.Fatalf("readObject() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a", "n", "o"}, r.keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if s, err := r.String("b"); err != nil || s != "x" {
		t.Errorf("String(\"b\") = %q, %v", s, err)
	}
	if list, err := r.Strings("a"); err != nil || len(list) != 2 {
		t.Errorf("Strings(\"a\") = %v, %v", list, err)
	}
	if n, err := r.Number("n"); err != nil || n.String() != "1.50" {
		t.Errorf("Number(\"n\") = %v, %v, want 1.50 with all its digits", n, err)
	}
	o, err := r.Object("o")
	if err != nil {
		t.Fatalf("Object(\"o\") returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"k2", "k1"}, o.keys); diff != "" {
		t.Errorf("nested keys mismatch (-want +got):\n%s", diff)
	}

	errorCases := []struct {
		name string
		read func() error
		path string
	}{
		{"missing", func() error { _, err := r.String("nope"); return err }, "root"},
		{"string is a number", func() error { _, err := r.String("n"); return err }, "root.n"},
		{"number is a string", func() error { _, err := r.Number("b"); return err }, "root.b"},
		{"array is a string", func() error { _, err := r.Array("b"); return err }, "root.b"},
		{"strings holds an object", func() error { _, err := r.Strings("o"); return err }, "root.o"},
		{"object is an array", func() error { _, err := r.Object("a"); return err }, "root.a"},
	}
	for _, tc := range errorCases {
		var ferr *FormatError
		if err := tc.read(); !errors.As(err, &ferr) {
			t.Errorf("%s: got error %v, want a *FormatError", tc.name, err)
		} else if ferr.Path != tc.path {
			t.Errorf("%s: got path %q, want %q", tc.name, ferr.Path, tc.path)
		}
	}
}
