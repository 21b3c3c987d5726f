// Package rules implements the deterministic, zero-I/O pre-filter. It is the
// first stage of the pipeline and the last line of defense when every
// external provider is unavailable.
package rules

import (
	"fmt"
	"strings"

	"github.com/WardMate/ChatGuard/pkg/patterns"
)

const DefaultMaxLength = 500

// Result is the outcome of a rule check. Category is only set when the
// message did not pass.
type Result struct {
	Passed   bool
	Reason   string
	Category string
}

type Classifier struct {
	maxLength int
}

func NewClassifier(maxLength int) *Classifier {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Classifier{maxLength: maxLength}
}

// Classify applies the fixed rule ladder. First match wins; the checks are
// ordered so that trivially invalid input never reaches a pattern scan.
func (c *Classifier) Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return blocked("empty message", patterns.CategoryContentFilter)
	}
	if len(text) > c.maxLength {
		return blocked(
			fmt.Sprintf("message too long (max %d characters)", c.maxLength),
			patterns.CategoryContentFilter,
		)
	}
	if term, ok := patterns.Profanity.Match(text); ok {
		return blocked("message contains inappropriate language: "+term, patterns.CategoryContentFilter)
	}
	if term, ok := patterns.HateSpeech.Match(text); ok {
		return blocked("message contains hate speech: "+term, patterns.CategoryContentFilter)
	}
	if term, ok := patterns.Harassment.Match(text); ok {
		return blocked("message contains harassing language: "+term, patterns.CategoryContentFilter)
	}
	if term, ok := patterns.Propaganda.Match(text); ok {
		return blocked("political or religious content is not allowed here: "+term, patterns.CategoryOffTopic)
	}
	if _, ok := patterns.MedicalAdvice.Match(text); ok {
		return blocked("please leave medical advice to the hospital staff", patterns.CategoryMedicalAdvice)
	}
	if _, ok := patterns.PersonalData.Match(text); ok {
		return blocked("message appears to contain personal contact information", patterns.CategoryPrivacy)
	}
	if term, ok := patterns.Spam.Match(text); ok {
		return blocked("message looks like spam or advertising: "+term, patterns.CategorySpam)
	}
	return Result{Passed: true}
}

func blocked(reason, category string) Result {
	return Result{Passed: false, Reason: reason, Category: category}
}
