package moderation

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// providerDecision is the normalized shape of a provider's structured
// output.
type providerDecision struct {
	Allowed  bool
	Category string
	Reason   string
}

// ExtractJSONObject pulls the first well-formed JSON object out of raw,
// tolerating prose before and after it. The scan is bracket-matched and
// string-aware, so braces inside string values don't break it.
func ExtractJSONObject(raw string) (string, bool) {
	for start := 0; start < len(raw); start++ {
		if raw[start] != '{' {
			continue
		}
		if end, ok := matchObject(raw, start); ok {
			candidate := raw[start : end+1]
			if _, err := fastjson.Parse(candidate); err == nil {
				return candidate, true
			}
		}
	}
	return "", false
}

func matchObject(raw string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// parseDecision normalizes a provider response into a decision. Providers
// disagree on key names (allowed/passed/decision); a missing verdict key
// defaults to allowed, consistent with the fail-open contract.
func parseDecision(raw string) (providerDecision, error) {
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		return providerDecision{}, fmt.Errorf("no JSON object found in provider response")
	}
	v, err := fastjson.Parse(obj)
	if err != nil {
		return providerDecision{}, fmt.Errorf("failed to parse provider response: %w", err)
	}

	decision := providerDecision{Allowed: true}
	switch {
	case v.Exists("allowed"):
		decision.Allowed = v.GetBool("allowed")
	case v.Exists("passed"):
		decision.Allowed = v.GetBool("passed")
	case v.Exists("decision"):
		verdict := strings.ToLower(string(v.GetStringBytes("decision")))
		decision.Allowed = verdict != "block" && verdict != "blocked"
	}
	decision.Category = string(v.GetStringBytes("category"))
	decision.Reason = string(v.GetStringBytes("reason"))
	return decision, nil
}
