package pool

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format controls how stamps are written to and read from documents.
//
// A Format is passed explicitly to the serialization functions; there is no
// package level state to configure.
type Format struct {
	DateTime string         // layout used when the time of day is not midnight
	Date     string         // layout used at midnight
	Location *time.Location // nil means time.Local
}

// DefaultFormat writes "23.06.2021 07:53:55" and "23.06.2021".
var DefaultFormat = Format{
	DateTime: "02.01.2006 15:04:05",
	Date:     "02.01.2006",
}

func (f Format) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// Stamp formats t, dropping the time of day when it is exactly midnight.
func (f Format) Stamp(t time.Time) string {
	t = t.In(f.location())
	if isStartOfDay(t) {
		return t.Format(f.Date)
	}
	return t.Format(f.DateTime)
}

// ParseStamp parses a stamp written by Stamp. The full date-time layout is
// tried first, then the date only layout.
func (f Format) ParseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(f.DateTime, s, f.location())
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation(f.Date, s, f.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stamp %q want format %q or %q", s, f.DateTime, f.Date)
	}
	return t, nil
}

func isStartOfDay(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// truncate drops what the document format cannot persist.
func truncate(t time.Time) time.Time { return t.Truncate(time.Second) }

var relativeDayRE = regexp.MustCompile(`^([+-])(\d+)d$`)

// ParseDate is the lenient parser used for user input. Besides the stamp
// layouts it accepts "0d" for today and relative days like "-2d" or "+1d".
// Relative dates are at midnight.
func (f Format) ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	now = now.In(f.location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.location())
	if s == "0d" {
		return today, nil
	}
	if match := relativeDayRE.FindStringSubmatch(s); match != nil {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex
			return time.Time{}, fmt.Errorf("invalid number in relative date %q: %w", s, err)
		}
		if match[1] == "-" {
			n = -n
		}
		return today.AddDate(0, 0, n), nil
	}
	return f.ParseStamp(s)
}
