package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

// judgeSystemPrompt builds the step-1 system prompt from the interest
// filters of the registered sources. Unfiltered sources are excluded,
// their articles never reach the backend.
func judgeSystemPrompt(sources map[string]domain.FeedSource) string {
	keys := make([]string, 0, len(sources))
	for key, src := range sources {
		if src.Unfiltered() {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var interests strings.Builder
	for _, key := range keys {
		src := sources[key]
		interests.WriteString(fmt.Sprintf("- %s (%s): %s\n", src.Name, key, *src.Interest))
	}

	return fmt.Sprintf(`You are an analyst tracking regulatory and legislative changes announced by government agencies.
For each press release title, decide whether it falls within the user's interest areas.

## Interest areas per source
%s
## Rules
- relevant = true when the title matches the source's interest areas
- relevant = false when it clearly does not
- when in doubt, prefer relevant = true (a missed change is worse than a false alarm)
- set category to the matching interest keyword

## Output format
Output JSON only. No markdown code fences, no commentary.`, interests.String())
}

// judgeUserPrompt renders the numbered batch of titles to judge.
// The 1-based index is the correlation key for the response.
func judgeUserPrompt(lines []string) string {
	return fmt.Sprintf(`Judge whether each of the following press release titles matches the interest areas.

%s

Respond with a JSON array in this exact shape:
[
  {"index": 1, "relevant": true, "category": "crypto assets"},
  {"index": 2, "relevant": false, "category": null}
]`, strings.Join(lines, "\n"))
}

// analyzeSystemPrompt is the step-2 instruction for structured impact analysis
const analyzeSystemPrompt = `You are an expert analyst of regulatory and legislative changes.
Analyze the government press release below and produce a structured impact summary.

Output the following five fields as JSON, each in one or two concise sentences.
Use "no information" for anything the text does not state.
Write in the same language as the source material.
Output JSON only. No markdown code fences, no commentary.

{
  "what_changes": "what changes (outline of the regulatory change)",
  "who_affected": "who is affected (the parties impacted)",
  "when": "effective date or application start",
  "action_required": "required response (concrete actions to take)",
  "summary": "a summary of roughly three lines"
}`

// analyzeUserPrompt wraps the fetched detail page for the analyzer.
// Content is pre-truncated by the extractor; no further bounding here.
func analyzeUserPrompt(sourceName, title, content string) string {
	return fmt.Sprintf(`Analyze the impact of the following press release.

Source: %s
Title: %s

--- body ---
%s
--- end of body ---`, sourceName, title, content)
}
