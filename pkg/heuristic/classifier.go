// Package heuristic scores a message on four axes (sentiment, toxicity,
// topic sensitivity, emotional state) from keyword and regex counts, then
// maps the profile to an allow/warn/block action. It runs synchronously with
// no I/O and acts as the nuanced backstop behind the rule-based pre-filter.
package heuristic

import (
	"github.com/WardMate/ChatGuard/pkg/patterns"
	"github.com/WardMate/ChatGuard/pkg/types"
)

// Action is the decision suggested by the heuristic layer. A warn is
// surfaced as a flagged-but-visible message.
type Action string

const (
	ActionAllow Action = "allow"
	ActionWarn  Action = "warn"
	ActionBlock Action = "block"
)

// Assessment carries the action plus the explanatory metadata shown to the
// sender. Reason and Suggestions are empty when the action is allow.
type Assessment struct {
	Action      Action
	Reason      string
	Category    string
	Confidence  float64
	Suggestions []string
}

// historyWindow is how many trailing history entries feed the distress
// hysteresis: a sender who was just distressed is treated cautiously even
// if the current message reads neutral.
const historyWindow = 3

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify is a total function: every profile field always has a value.
// Identical text and history always produce an identical profile.
func (c *Classifier) Classify(text string, history []string) types.ClassificationProfile {
	return types.ClassificationProfile{
		Sentiment:        scoreSentiment(text),
		Toxicity:         scoreToxicity(text),
		TopicSensitivity: scoreTopic(text),
		EmotionalState:   scoreEmotion(text, history),
	}
}

// Decide maps a profile to an action. Safety-critical signals (toxicity,
// triggering topics, distress) always dominate sentiment-only signals.
func (c *Classifier) Decide(profile types.ClassificationProfile) Assessment {
	switch {
	case profile.Toxicity == types.ToxicityHigh:
		return assess(ActionBlock, "toxicity_high", 0.9)
	case profile.TopicSensitivity == types.TopicTriggering:
		return assess(ActionBlock, "topic_triggering", 0.9)
	case profile.EmotionalState == types.EmotionDistressed:
		return assess(ActionBlock, "distressed", 0.8)
	case profile.Toxicity == types.ToxicityMedium:
		return assess(ActionWarn, "toxicity_medium", 0.7)
	case profile.TopicSensitivity == types.TopicSensitive:
		return assess(ActionWarn, "topic_sensitive", 0.7)
	case profile.Sentiment == types.SentimentVeryNegative:
		return assess(ActionWarn, "very_negative", 0.8)
	case profile.EmotionalState == types.EmotionAnxious:
		return assess(ActionWarn, "anxious", 0.8)
	case profile.Sentiment == types.SentimentPositive && profile.EmotionalState == types.EmotionCalm:
		return Assessment{Action: ActionAllow, Confidence: 0.6}
	default:
		return Assessment{Action: ActionAllow, Confidence: 0.5}
	}
}

func scoreSentiment(text string) types.Sentiment {
	pos := patterns.PositiveWords.Count(text)
	neg := patterns.NegativeWords.Count(text)

	if patterns.VeryNegativeWords.Count(text) > 0 {
		return types.SentimentVeryNegative
	}
	switch {
	case neg > pos:
		// Intensity boost: repeated negativity plus an intensifier reads
		// as very negative.
		if neg > 2 && patterns.Intensifiers.Count(text) > 0 {
			return types.SentimentVeryNegative
		}
		return types.SentimentNegative
	case pos > neg:
		return types.SentimentPositive
	default:
		return types.SentimentNeutral
	}
}

func scoreToxicity(text string) types.Toxicity {
	if _, ok := patterns.ToxicityHighPatterns.Match(text); ok {
		return types.ToxicityHigh
	}
	if _, ok := patterns.ToxicityMediumPatterns.Match(text); ok {
		return types.ToxicityMedium
	}
	if _, ok := patterns.ToxicityLowPatterns.Match(text); ok {
		return types.ToxicityLow
	}
	return types.ToxicityNone
}

func scoreTopic(text string) types.TopicSensitivity {
	if _, ok := patterns.TriggeringTopics.Match(text); ok {
		return types.TopicTriggering
	}
	if _, ok := patterns.SensitiveTopics.Match(text); ok {
		return types.TopicSensitive
	}
	return types.TopicSafe
}

func scoreEmotion(text string, history []string) types.EmotionalState {
	if patterns.DistressWords.Count(text) > 0 {
		return types.EmotionDistressed
	}
	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	for _, prior := range history[start:] {
		if patterns.DistressWords.Count(prior) > 0 {
			return types.EmotionDistressed
		}
	}

	anxious := patterns.AnxiousWords.Count(text)
	stressed := patterns.StressedWords.Count(text)
	calm := patterns.CalmWords.Count(text)
	switch {
	case anxious >= stressed && anxious > calm:
		return types.EmotionAnxious
	case stressed > anxious && stressed > calm:
		return types.EmotionStressed
	default:
		return types.EmotionCalm
	}
}

func assess(action Action, category string, confidence float64) Assessment {
	return Assessment{
		Action:      action,
		Reason:      reasons[category],
		Category:    category,
		Confidence:  confidence,
		Suggestions: suggestions[category],
	}
}

// Reason and suggestion lookups keyed by the dominant triggering category.
var reasons = map[string]string{
	"toxicity_high":   "This message reads as hostile. Everyone here is having a hard day, so let's keep things kind.",
	"toxicity_medium": "This message might come across harsher than you intend.",
	"topic_triggering": "This topic can be very distressing for other people in the waiting room, " +
		"so we can't share it in the group chat.",
	"topic_sensitive": "Sensitive topics like this can be uncomfortable for others waiting here.",
	"very_negative":   "This message carries a lot of weight. Sharing it as-is might bring others down.",
	"distressed":      "It sounds like you're going through a lot right now. Please reach out to the hospital staff if you need support.",
	"anxious":         "It sounds like you're feeling anxious. Others here may relate and be able to support you.",
}

var suggestions = map[string][]string{
	"toxicity_high": {
		"Try describing what upset you instead of directing it at someone.",
	},
	"toxicity_medium": {
		"Consider softening the wording before sending.",
		"Try \"I'm frustrated with the wait\" instead of criticizing others.",
	},
	"topic_sensitive": {
		"Keep the conversation on how everyone is holding up while they wait.",
	},
	"very_negative": {
		"Sharing one specific worry often gets a better response than everything at once.",
	},
	"anxious": {
		"Try sharing what's worrying you and asking if anyone has been through something similar.",
		"For example: \"I'm nervous about a family member's procedure — any words of encouragement?\"",
	},
}
