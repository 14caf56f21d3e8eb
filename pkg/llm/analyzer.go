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

// Analyzer performs step-2 impact analysis, one backend call per article.
// Content length varies too much across detail pages to batch economically.
type Analyzer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewAnalyzer creates an impact analyzer
func NewAnalyzer(cfg config.LLMConfig) *Analyzer {
	return &Analyzer{client: newClient(cfg), config: cfg}
}

// Analyze asks the backend for a five-field impact summary of one article.
// The content must already be truncated to budget by the extractor. A field
// the backend cannot fill comes back as its "no information" placeholder
// per the system instruction; nothing is remedied here.
func (a *Analyzer) Analyze(ctx context.Context, sourceName, title, content string) (domain.Analysis, error) {
	raw, err := completion(ctx, a.client, a.config, true, analyzeSystemPrompt, analyzeUserPrompt(sourceName, title, content))
	if err != nil {
		return domain.Analysis{}, err
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("analyze %q: %w", title, err)
	}
	return analysis, nil
}

// parseAnalysis extracts the JSON object from the response text
func parseAnalysis(content string) (domain.Analysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return domain.Analysis{}, fmt.Errorf("no json object found in response")
	}

	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &analysis); err != nil {
		return domain.Analysis{}, fmt.Errorf("failed to parse json object response: %w", err)
	}
	return analysis, nil
}
