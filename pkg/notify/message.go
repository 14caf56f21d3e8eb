package notify

import (
	"fmt"
	"strings"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

const (
	// maxMessageLen is the LINE text message size limit; oversize payloads
	// are rejected by the API, so the cut happens here at the wire boundary
	maxMessageLen = 5000
	cutLen        = 4990

	noInfo = "no information"
)

// Message is a single LINE text message
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// FormatArticle renders an analyzed article into one broadcast message
func FormatArticle(a *domain.Article) Message {
	text := strings.TrimSpace(fmt.Sprintf(`📋 [%s] %s
━━━━━━━━━━━━━━━━━━━
%s

■ What changes
%s

■ Who is affected
%s

■ Effective date
%s

■ Action required
%s

🔗 %s
📅 %s`,
		a.SourceName,
		orDefault(a.Category, domain.DefaultCategory),
		a.Title,
		orDefault(a.WhatChanges, noInfo),
		orDefault(a.WhoAffected, noInfo),
		orDefault(a.EffectiveDate, noInfo),
		orDefault(a.ActionRequired, noInfo),
		a.URL,
		publishedDate(a),
	))

	if runes := []rune(text); len(runes) > maxMessageLen {
		text = string(runes[:cutLen]) + "..."
	}

	return Message{Type: "text", Text: text}
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func publishedDate(a *domain.Article) string {
	if a.PublishedAt == nil {
		return ""
	}
	return a.PublishedAt.Format("2006-01-02 15:04")
}
