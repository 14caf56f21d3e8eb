package domain

import "time"

// FeedSource is a monitored government publication feed.
// Interest is a comma-separated keyword list narrowing relevance;
// nil means every article from this source is relevant unconditionally.
type FeedSource struct {
	ID            int64
	Key           string
	Name          string
	FeedURL       string
	Interest      *string
	Active        bool
	LastFetchedAt *time.Time
	CreatedAt     time.Time
}

// Unfiltered reports whether the source accepts all articles without judgment.
func (s *FeedSource) Unfiltered() bool {
	return s.Interest == nil || *s.Interest == ""
}
