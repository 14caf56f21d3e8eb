package domain

import "time"

// DefaultCategory is assigned to articles from unfiltered sources,
// which are relevant without any backend judgment.
const DefaultCategory = "general"

// Article is a single publication entry. URL is the sole dedup key;
// two entries with the same URL are the same article regardless of
// title or publish date.
type Article struct {
	ID         int64
	Source     string // feed source key
	SourceName string
	Title      string
	URL        string
	PublishedAt *time.Time

	// relevance judgment, nil until classified
	Relevant *bool
	Category *string

	// impact analysis, nil until analyzed
	Summary        *string
	WhatChanges    *string
	WhoAffected    *string
	EffectiveDate  *string
	ActionRequired *string

	NotifiedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasAnalysis reports whether impact analysis completed for the article.
// WhatChanges is the completion marker; the other fields are not checked.
func (a *Article) HasAnalysis() bool {
	return a.WhatChanges != nil
}

// ApplyClassification merges a judgment into the article.
func (a *Article) ApplyClassification(c Classification) {
	relevant := c.Relevant
	a.Relevant = &relevant
	a.Category = c.Category
}

// ApplyAnalysis merges impact analysis fields into the article.
func (a *Article) ApplyAnalysis(r Analysis) {
	a.Summary = &r.Summary
	a.WhatChanges = &r.WhatChanges
	a.WhoAffected = &r.WhoAffected
	a.EffectiveDate = &r.EffectiveDate
	a.ActionRequired = &r.ActionRequired
}

// Classification is the step-1 relevance judgment for one article.
type Classification struct {
	Relevant bool
	Category *string
}

// Analysis is the step-2 structured impact summary for one article.
type Analysis struct {
	Summary        string `json:"summary"`
	WhatChanges    string `json:"what_changes"`
	WhoAffected    string `json:"who_affected"`
	EffectiveDate  string `json:"when"`
	ActionRequired string `json:"action_required"`
}

// FeedItem is one parsed feed entry before ingestion.
type FeedItem struct {
	Title       string
	URL         string
	PublishedAt *time.Time
}

// RunSummary reports the outcome of one pipeline run.
type RunSummary struct {
	NewCount      int
	RelevantCount int
	NotifiedCount int
}
