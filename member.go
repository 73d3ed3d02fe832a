package pool

import (
	"slices"
	"time"
)

// entryRef locates a purchase or a transfer in its group.
type entryRef struct {
	kind  Kind
	index int
}

// Member is a named participant of a Group.
//
// A member does not own its participations: it only references the entries
// of its group that involve it, and its balance is derived from them (see
// Group.Balance).
type Member struct {
	name           string
	stamp          time.Time
	participations []entryRef // in link order
}

// Name returns the member's unique name within its group.
func (m *Member) Name() string { return m.name }

// Stamp returns the member's creation time.
func (m *Member) Stamp() time.Time { return m.stamp }

// SetStamp overrides the creation time, e.g. when restoring a document.
func (m *Member) SetStamp(t time.Time) { m.stamp = truncate(t) }

// NumberOfParticipations returns how many purchases and transfers involve m.
func (m *Member) NumberOfParticipations() int { return len(m.participations) }

func (m *Member) addParticipation(ref entryRef) {
	if slices.Contains(m.participations, ref) {
		return
	}
	m.participations = append(m.participations, ref)
}

func (m *Member) removeParticipation(ref entryRef) {
	m.participations = slices.DeleteFunc(m.participations, func(r entryRef) bool { return r == ref })
}

func (m *Member) String() string { return m.name }
