package patterns

// Scoring tables for the heuristic classifier. These are deliberately more
// nuanced and more permissive than the hard-block tables in patterns.go:
// the rule-based classifier owns the canonical blocklists, these only feed
// the 4-axis profile.

var (
	PositiveWords = newList("positive",
		"good", "great", "wonderful", "lovely", "happy", "glad", "hope",
		"hopeful", "thank", "thanks", "grateful", "better", "relieved",
		"kind", "nice", "well", "love", "support",
	)

	NegativeWords = newList("negative",
		"bad", "sad", "scared", "worried", "afraid", "angry", "upset",
		"terrible", "awful", "hate", "pain", "hurt", "fear", "alone",
		"tired", "sick", "horrible", "worse",
	)

	VeryNegativeWords = newList("very_negative",
		"hopeless", "devastated", "unbearable", "miserable", "worthless",
		"furious", "horrific", "nightmare", "agony", "destroyed",
	)

	Intensifiers = newList("intensifier",
		"very", "really", "extremely", "so", "totally", "completely",
		"absolutely", "incredibly",
	)
)

// Toxicity tiers, checked high to medium to low; the first tier with a
// match wins.
var (
	ToxicityHighPatterns = newRegexList("toxicity_high",
		`(?i)\bkill\s+(you|him|her|them)\b`,
		`(?i)\bi('ll| will)\s+hurt\s+you\b`,
		`(?i)\byou\s+(should|deserve to)\s+die\b`,
		`(?i)\bgo\s+to\s+hell\b`,
		`(?i)\b(fuck(ing)?|cunt|motherfucker)\b`,
	)

	ToxicityMediumPatterns = newRegexList("toxicity_medium",
		`(?i)\bshut\s+up\b`,
		`(?i)\b(idiots?|morons?|stupid|pathetic)\b`,
		`(?i)\bhate\s+(you|him|her|them|everyone)\b`,
		`(?i)\b(bitch|asshole|bastard)\b`,
	)

	ToxicityLowPatterns = newRegexList("toxicity_low",
		`(?i)\b(dumb|annoying|ridiculous)\b`,
		`(?i)\bwho\s+cares\b`,
	)
)

// Topic ladders. Triggering beats sensitive; anything else is safe.
var (
	TriggeringTopics = newList("triggering",
		"death", "died", "dying", "dead", "kill", "killed", "suicide",
		"overdose", "violence", "violent", "blood", "bleeding", "trauma",
		"emergency", "collapsed", "code blue",
	)

	SensitiveTopics = newList("sensitive",
		"religion", "religious", "god", "church", "mosque", "politics",
		"political", "election", "vote", "medication", "diagnosis",
		"dosage", "prescription", "phone number", "home address",
	)
)

// Emotional-state counters. Distress dominates, and recent distress in the
// history window keeps the sender in the cautious bucket.
var (
	DistressWords = newList("distress",
		"can't take it", "can't cope", "terrified", "desperate",
		"give up", "falling apart", "breaking down", "panicking",
		"want to die", "kill myself", "no way out",
	)

	AnxiousWords = newList("anxious",
		"scared", "anxious", "nervous", "worried", "afraid",
		"frightened", "dread", "uneasy", "panic",
	)

	StressedWords = newList("stressed",
		"stressed", "overwhelmed", "exhausted", "frustrated", "tense",
		"pressure", "too much", "on edge",
	)

	CalmWords = newList("calm",
		"calm", "fine", "okay", "ok", "relaxed", "peaceful", "alright",
	)
)
