package patterns_test

import (
	"testing"

	"github.com/WardMate/ChatGuard/pkg/patterns"
	"github.com/stretchr/testify/assert"
)

func TestListMatchesWholeWordsOnly(t *testing.T) {
	_, ok := patterns.Profanity.Match("we picked shiitake mushrooms")
	assert.False(t, ok, "substring of a longer word must not match")

	term, ok := patterns.Profanity.Match("this is shit")
	assert.True(t, ok)
	assert.Equal(t, "shit", term)

	_, ok = patterns.Harassment.Match("an idiotic mistake")
	assert.False(t, ok, "'idiot' must not match inside 'idiotic'")

	_, ok = patterns.Harassment.Match("you are an idiot")
	assert.True(t, ok)
}

func TestListMatchIsCaseInsensitive(t *testing.T) {
	_, ok := patterns.Harassment.Match("SHUT UP everyone")
	assert.True(t, ok)
}

func TestPhraseMatchingToleratesExtraWhitespace(t *testing.T) {
	_, ok := patterns.Emergency.Match("he has chest  pain right now")
	assert.True(t, ok)
}

func TestPersonalDataShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"dashed phone", "call me at 555-123-4567", true},
		{"parenthesized phone", "reach me on (555) 123-4567", true},
		{"bare digit run", "my number is 9876543210", true},
		{"email", "write to jane.doe@example.com please", true},
		{"ssn", "my ssn is 123-45-6789", true},
		{"plain sentence", "the waiting room is quiet today", false},
		{"small numbers", "bed 12 on floor 3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := patterns.PersonalData.Match(tt.text)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCountReturnsAllMatches(t *testing.T) {
	n := patterns.NegativeWords.Count("so scared and so worried and so afraid")
	assert.Equal(t, 3, n)
}
