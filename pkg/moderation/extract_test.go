package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			"bare object",
			`{"allowed": true}`,
			`{"allowed": true}`,
			true,
		},
		{
			"prose before and after",
			`Sure! Here is my analysis: {"allowed": false, "category": "spam"} Hope that helps.`,
			`{"allowed": false, "category": "spam"}`,
			true,
		},
		{
			"braces inside string values",
			`{"reason": "uses {curly} braces", "allowed": true}`,
			`{"reason": "uses {curly} braces", "allowed": true}`,
			true,
		},
		{
			"escaped quote inside string",
			`{"reason": "said \"no\"", "allowed": false}`,
			`{"reason": "said \"no\"", "allowed": false}`,
			true,
		},
		{
			"nested object",
			`{"verdict": {"allowed": true}}`,
			`{"verdict": {"allowed": true}}`,
			true,
		},
		{
			"skips malformed candidate",
			`{not json} but then {"allowed": true}`,
			`{"allowed": true}`,
			true,
		},
		{"no object at all", "the message looks fine to me", "", false},
		{"unclosed object", `{"allowed": true`, "", false},
		{"empty input", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecisionKeyVariants(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		allowed bool
	}{
		{"allowed true", `{"allowed": true}`, true},
		{"allowed false", `{"allowed": false}`, false},
		{"passed key", `{"passed": false}`, false},
		{"decision block", `{"decision": "block"}`, false},
		{"decision BLOCKED", `{"decision": "BLOCKED"}`, false},
		{"decision allow", `{"decision": "allow"}`, true},
		{"missing verdict key defaults to allowed", `{"category": "spam"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := parseDecision(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

func TestParseDecisionCarriesMetadata(t *testing.T) {
	decision, err := parseDecision(`{"allowed": false, "category": "harassment", "reason": "insults another visitor"}`)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "harassment", decision.Category)
	assert.Equal(t, "insults another visitor", decision.Reason)
}

func TestParseDecisionErrors(t *testing.T) {
	_, err := parseDecision("no structure here")
	assert.Error(t, err)
}
