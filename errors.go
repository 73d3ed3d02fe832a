package pool

import "fmt"

// ValidationError reports a value rejected by the ledger: a blank or
// duplicate member name, a non-positive amount or rate.
type ValidationError struct {
	Field  string // what was validated, e.g. "member name"
	Value  string // offending value, as text
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// LookupError reports a reference to something the group does not know:
// a member name, or the exchange rate of a currency.
type LookupError struct {
	Kind string // "member", "exchange rate", "currency"
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// FormatError reports a malformed persisted document.
//
// Path locates the faulty value (e.g. "purchases[2].date").
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("format error: %v", e.Err)
	}
	return fmt.Sprintf("format error at %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErrorf(path, format string, args ...any) *FormatError {
	return &FormatError{Path: path, Err: fmt.Errorf(format, args...)}
}
