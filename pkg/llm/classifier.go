package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/nwebcraft/reghawk/pkg/config"
	"github.com/nwebcraft/reghawk/pkg/domain"
)

// Classifier performs step-1 relevance judgment over article titles.
// Articles from unfiltered sources are resolved locally; everything else
// goes to the backend in a single batched call, whatever the source mix.
type Classifier struct {
	client *openai.Client
	config config.LLMConfig
}

// NewClassifier creates a relevance classifier
func NewClassifier(cfg config.LLMConfig) *Classifier {
	return &Classifier{client: newClient(cfg), config: cfg}
}

// judgeResponse is one entry of the backend's JSON array reply
type judgeResponse struct {
	Index    int     `json:"index"`
	Relevant bool    `json:"relevant"`
	Category *string `json:"category"`
}

// Judge classifies the given articles, returning one result per input in
// the same order. Sources without an interest filter short-circuit to
// relevant/general with no backend call. A backend or parse failure is
// returned as an error; the caller decides what a lost batch means.
func (c *Classifier) Judge(ctx context.Context, articles []domain.Article, sources map[string]domain.FeedSource) ([]domain.Classification, error) {
	results := make([]domain.Classification, len(articles))

	// resolve unfiltered sources locally, collect the rest for the backend
	toJudge := make([]int, 0, len(articles))
	for i, article := range articles {
		src, ok := sources[article.Source]
		if ok && src.Unfiltered() {
			category := domain.DefaultCategory
			results[i] = domain.Classification{Relevant: true, Category: &category}
			continue
		}
		toJudge = append(toJudge, i)
	}

	if len(toJudge) == 0 {
		return results, nil
	}

	lines := make([]string, 0, len(toJudge))
	for n, idx := range toJudge {
		article := articles[idx]
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", n+1, article.SourceName, article.Title))
	}

	judged, err := c.callBackend(ctx, judgeSystemPrompt(sources), judgeUserPrompt(lines))
	if err != nil {
		return nil, err
	}

	// reconcile by submitted index; the response count is not trusted.
	// an index the backend did not answer for resolves to not relevant,
	// a conservative default for partial output.
	byIndex := make(map[int]judgeResponse, len(judged))
	for _, j := range judged {
		byIndex[j.Index] = j
	}
	for n, idx := range toJudge {
		j, ok := byIndex[n+1]
		if !ok {
			results[idx] = domain.Classification{Relevant: false}
			continue
		}
		results[idx] = domain.Classification{Relevant: j.Relevant, Category: j.Category}
	}

	return results, nil
}

// callBackend sends the batch and parses the JSON array reply, retrying
// up to 3 times when the model wraps or mangles the JSON
func (c *Classifier) callBackend(ctx context.Context, system, user string) ([]judgeResponse, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		content, err := completion(ctx, c.client, c.config, false, system, user)
		if err != nil {
			return nil, err
		}

		judged, err := parseJudgeArray(content)
		if err == nil {
			return judged, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// parseJudgeArray extracts the first JSON array from the response text.
// Models occasionally wrap the array in prose or code fences.
func parseJudgeArray(content string) ([]judgeResponse, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json array found in response")
	}

	var judged []judgeResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &judged); err != nil {
		return nil, fmt.Errorf("failed to parse json array response: %w", err)
	}
	return judged, nil
}
