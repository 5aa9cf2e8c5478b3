package domain

import "time"

// Timestamps provides the common identity and modification-time fields shared
// by every stored record. It gets embedded in each domain type to keep things
// (hopefully) simple.
//
// Invariant: UpdatedAt >= CreatedAt at all times; every mutation refreshes
// UpdatedAt.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying record changes.
// UpdatedAt strictly increases even when two mutations land within the
// clock's resolution, so "edited after" comparisons stay meaningful.
func (t *Timestamps) Touch() {
	now := time.Now()
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new record.
func (t *Timestamps) InitTimestamps() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
}
