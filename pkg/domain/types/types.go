package types

import "github.com/google/uuid"

// Mode selects which derived chart series is exposed for display
type Mode string

const (
	// ModeDailyTransition shows per-day counts with a trailing 7-day average
	ModeDailyTransition Mode = "daily-transition"
	// ModeWeeklyTransition shows per-week counts
	ModeWeeklyTransition Mode = "weekly-transition"
	// ModeDailyCumulative shows running totals of daily counts
	ModeDailyCumulative Mode = "daily-cumulative"
)

// String returns the string representation
func (m Mode) String() string {
	return string(m)
}

// IsValid returns true if the mode is one of the known modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeDailyTransition, ModeWeeklyTransition, ModeDailyCumulative:
		return true
	}
	return false
}

// DefaultMode is the mode a selector starts in
func DefaultMode() Mode {
	return ModeDailyTransition
}

// Modes returns all known modes in display order
func Modes() []Mode {
	return []Mode{ModeDailyTransition, ModeWeeklyTransition, ModeDailyCumulative}
}

// DatasetKind represents how a dataset is meant to be rendered
type DatasetKind string

const (
	DatasetBar  DatasetKind = "bar"
	DatasetLine DatasetKind = "line"
)

// String returns the string representation
func (k DatasetKind) String() string {
	return string(k)
}

// SnapshotID identifies one loaded input snapshot, for log correlation
type SnapshotID string

// String returns the string representation
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID creates a new SnapshotID
func NewSnapshotID() SnapshotID {
	return SnapshotID(uuid.New().String())
}
