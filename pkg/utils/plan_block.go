package utils

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"travelog/internal/models/response_models"
)

// The assistant is told to terminate a finished plan with a fenced ```json
// block. A reply without one, or with one that does not parse, simply means
// "no plan detected"; it is never an error for the caller.
var planBlockRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

func ExtractPlanBlock(reply string) (*response_models.StructuredPlan, bool) {
	match := planBlockRe.FindStringSubmatch(reply)
	if match == nil {
		return nil, false
	}

	var plan response_models.StructuredPlan
	if err := json.Unmarshal([]byte(match[1]), &plan); err != nil {
		log.Printf("Plan block present but unparseable: %v", err)
		return nil, false
	}
	return &plan, true
}

var urlRe = regexp.MustCompile(`https?://[^\s)\]}"'<>]+`)

// ExtractCitations collects the URLs the assistant referenced in its reply.
func ExtractCitations(reply string) []string {
	matches := urlRe.FindAllString(reply, -1)

	seen := make(map[string]bool)
	citations := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;")
		if !seen[m] {
			seen[m] = true
			citations = append(citations, m)
		}
	}
	return citations
}
