package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amapara27/Horizon/internal/domain"
)

// stripWrappers removes known formatting the completion service wraps its
// JSON answer in (markdown code fences, a leading language tag, surrounding
// prose before the first brace).
func stripWrappers(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Some responses prefix the object with a sentence; cut to the outermost
	// braces when present.
	if start := strings.Index(s, "{"); start > 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}

	return s
}

// decodeJSON strips wrapper formatting and decodes the remaining text into v.
func decodeJSON(raw string, v any) error {
	cleaned := stripWrappers(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("sentiment: %w: %v", domain.ErrResponseParse, err)
	}
	return nil
}

// clampScore bounds a model-provided score to the -100..+100 contract.
func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < -100 {
		return -100
	}
	return score
}
