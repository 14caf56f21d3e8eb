package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticle_HasAnalysis(t *testing.T) {
	article := Article{}
	assert.False(t, article.HasAnalysis())

	// WhatChanges alone marks analysis as complete
	w := "something changes"
	article.WhatChanges = &w
	assert.True(t, article.HasAnalysis())

	summary := "summary only"
	other := Article{Summary: &summary}
	assert.False(t, other.HasAnalysis())
}

func TestArticle_ApplyClassification(t *testing.T) {
	article := Article{}
	category := "crypto assets"
	article.ApplyClassification(Classification{Relevant: true, Category: &category})

	assert.NotNil(t, article.Relevant)
	assert.True(t, *article.Relevant)
	assert.Equal(t, "crypto assets", *article.Category)

	article.ApplyClassification(Classification{Relevant: false})
	assert.False(t, *article.Relevant)
	assert.Nil(t, article.Category)
}

func TestArticle_ApplyAnalysis(t *testing.T) {
	article := Article{}
	article.ApplyAnalysis(Analysis{
		Summary:        "s",
		WhatChanges:    "w",
		WhoAffected:    "a",
		EffectiveDate:  "d",
		ActionRequired: "r",
	})

	assert.Equal(t, "s", *article.Summary)
	assert.Equal(t, "w", *article.WhatChanges)
	assert.Equal(t, "a", *article.WhoAffected)
	assert.Equal(t, "d", *article.EffectiveDate)
	assert.Equal(t, "r", *article.ActionRequired)
	assert.True(t, article.HasAnalysis())
}

func TestFeedSource_Unfiltered(t *testing.T) {
	src := FeedSource{Key: "egov"}
	assert.True(t, src.Unfiltered())

	empty := ""
	src.Interest = &empty
	assert.True(t, src.Unfiltered())

	interest := "crypto"
	src.Interest = &interest
	assert.False(t, src.Unfiltered())
}
