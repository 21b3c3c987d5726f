package types

// Sentiment is the overall emotional polarity of a message.
type Sentiment string

const (
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentNegative     Sentiment = "negative"
	SentimentVeryNegative Sentiment = "very_negative"
)

// Toxicity is the hostility level detected in a message.
type Toxicity string

const (
	ToxicityNone   Toxicity = "none"
	ToxicityLow    Toxicity = "low"
	ToxicityMedium Toxicity = "medium"
	ToxicityHigh   Toxicity = "high"
)

// TopicSensitivity ranks how delicate the subject matter is for a
// hospital waiting-room audience.
type TopicSensitivity string

const (
	TopicSafe       TopicSensitivity = "safe"
	TopicSensitive  TopicSensitivity = "sensitive"
	TopicTriggering TopicSensitivity = "triggering"
)

// EmotionalState is the inferred state of the sender.
type EmotionalState string

const (
	EmotionCalm       EmotionalState = "calm"
	EmotionStressed   EmotionalState = "stressed"
	EmotionAnxious    EmotionalState = "anxious"
	EmotionDistressed EmotionalState = "distressed"
)

// ClassificationProfile is the 4-axis output of the heuristic classifier.
// Every field always carries a value; there is no unknown state.
type ClassificationProfile struct {
	Sentiment        Sentiment        `json:"sentiment"`
	Toxicity         Toxicity         `json:"toxicity"`
	TopicSensitivity TopicSensitivity `json:"topic_sensitivity"`
	EmotionalState   EmotionalState   `json:"emotional_state"`
}
