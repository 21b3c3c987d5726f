package rules_test

import (
	"strings"
	"testing"

	"github.com/WardMate/ChatGuard/pkg/patterns"
	"github.com/WardMate/ChatGuard/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestClassifyEmptyMessage(t *testing.T) {
	c := rules.NewClassifier(0)

	for _, text := range []string{"", "   ", "\n\t"} {
		result := c.Classify(text)
		assert.False(t, result.Passed)
		assert.Equal(t, "empty message", result.Reason)
	}
}

func TestClassifyTooLong(t *testing.T) {
	c := rules.NewClassifier(500)

	result := c.Classify(strings.Repeat("a", 501))
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "too long")

	assert.True(t, c.Classify(strings.Repeat("a", 500)).Passed)
}

func TestClassifyTooLongWinsOverContent(t *testing.T) {
	c := rules.NewClassifier(20)

	// Length is checked before any pattern scan.
	result := c.Classify("you are all idiots " + strings.Repeat("x", 20))
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "too long")
}

func TestClassifyProfanity(t *testing.T) {
	c := rules.NewClassifier(0)

	result := c.Classify("this fucking wait is endless")
	assert.False(t, result.Passed)
	assert.Equal(t, patterns.CategoryContentFilter, result.Category)
}

func TestClassifyHarassment(t *testing.T) {
	c := rules.NewClassifier(0)

	result := c.Classify("You are all idiots, I hate this place")
	assert.False(t, result.Passed)
	assert.Equal(t, patterns.CategoryContentFilter, result.Category)
	assert.Contains(t, result.Reason, "harassing")
}

func TestClassifyPropaganda(t *testing.T) {
	c := rules.NewClassifier(0)

	result := c.Classify("while you wait, remember to vote for my party")
	assert.False(t, result.Passed)
	assert.Equal(t, patterns.CategoryOffTopic, result.Category)
}

func TestClassifyMedicalAdvice(t *testing.T) {
	c := rules.NewClassifier(0)

	result := c.Classify("you should take double painkillers instead")
	assert.False(t, result.Passed)
	assert.Equal(t, patterns.CategoryMedicalAdvice, result.Category)
}

func TestClassifyPersonalData(t *testing.T) {
	c := rules.NewClassifier(0)

	tests := []string{
		"call me at 555-123-4567",
		"My number is 9876543210, call me",
		"email me: jane.doe@example.com",
		"my ssn is 123-45-6789",
	}
	for _, text := range tests {
		result := c.Classify(text)
		assert.False(t, result.Passed, text)
		assert.Equal(t, patterns.CategoryPrivacy, result.Category, text)
	}
}

func TestClassifySpam(t *testing.T) {
	c := rules.NewClassifier(0)

	result := c.Classify("buy now and use my promo code")
	assert.False(t, result.Passed)
	assert.Equal(t, patterns.CategorySpam, result.Category)
}

func TestClassifyCleanMessagePasses(t *testing.T) {
	c := rules.NewClassifier(0)

	tests := []string{
		"Good morning everyone, hope your loved ones feel better soon",
		"I'm really scared about my mom's surgery tomorrow",
		"the coffee machine on floor 2 works again",
	}
	for _, text := range tests {
		result := c.Classify(text)
		assert.True(t, result.Passed, text)
		assert.Empty(t, result.Reason)
		assert.Empty(t, result.Category)
	}
}

func TestClassifyNoSubstringFalsePositives(t *testing.T) {
	c := rules.NewClassifier(0)

	// "assassin" must not trip on any short embedded term.
	assert.True(t, c.Classify("the documentary about an assassin was on tv").Passed)
	assert.True(t, c.Classify("we had shiitake soup for lunch").Passed)
}
