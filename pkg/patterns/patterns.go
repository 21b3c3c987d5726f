// Package patterns holds the shared keyword and regex tables consumed by the
// rule-based classifier, the heuristic classifier and the safety detector.
// Everything here is compiled once at init and read-only afterwards, so the
// tables are shared process-wide without locking.
package patterns

import (
	"regexp"
	"strings"
)

// Category identifiers reported in verdicts.
const (
	CategoryContentFilter = "content_filter"
	CategoryOffTopic      = "off_topic"
	CategoryMedicalAdvice = "medical_advice"
	CategoryPrivacy       = "privacy"
	CategorySpam          = "spam"
	CategorySelfHarm      = "self_harm"
)

// List is a set of literal keywords or phrases compiled into a single
// case-insensitive regex with word boundaries, so "assassin" never trips
// a match on "ass".
type List struct {
	name string
	re   *regexp.Regexp
}

func newList(name string, terms ...string) *List {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		q := regexp.QuoteMeta(strings.ToLower(t))
		// Phrases may contain arbitrary whitespace between words.
		q = strings.ReplaceAll(q, " ", `\s+`)
		quoted = append(quoted, q)
	}
	return &List{
		name: name,
		re:   regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

func (l *List) Name() string { return l.name }

// Match returns the first matching term, if any.
func (l *List) Match(text string) (string, bool) {
	m := l.re.FindString(text)
	return m, m != ""
}

// Count returns the number of matches in text.
func (l *List) Count(text string) int {
	return len(l.re.FindAllString(text, -1))
}

// RegexList is an ordered set of pre-built expressions for shapes that a
// plain keyword list cannot express (phone numbers, threats, etc).
type RegexList struct {
	name string
	res  []*regexp.Regexp
}

func newRegexList(name string, exprs ...string) *RegexList {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		res = append(res, regexp.MustCompile(e))
	}
	return &RegexList{name: name, res: res}
}

func (r *RegexList) Name() string { return r.name }

func (r *RegexList) Match(text string) (string, bool) {
	for _, re := range r.res {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

func (r *RegexList) Count(text string) int {
	n := 0
	for _, re := range r.res {
		n += len(re.FindAllString(text, -1))
	}
	return n
}

// Hard-block tables used by the rule-based classifier. These are the single
// canonical blocklists; the heuristic layer keeps its own scoring lists but
// never duplicates these.
var (
	Profanity = newList("profanity",
		"fuck", "fucking", "shit", "bitch", "bastard", "asshole", "dick",
		"cunt", "prick", "motherfucker", "whore", "slut", "piss off",
	)

	HateSpeech = newList("hate_speech",
		"nazi", "subhuman", "vermin", "go back to your country",
		"your kind doesn't belong", "people like you are animals",
	)

	Harassment = newList("harassment",
		"idiot", "idiots", "moron", "morons", "loser", "losers",
		"pathetic", "worthless", "nobody likes you", "shut up",
		"hate", "you people are stupid", "kill yourself",
	)

	Propaganda = newList("propaganda",
		"vote for", "don't vote", "the election was stolen",
		"political party", "government conspiracy", "wake up sheeple",
		"the only true religion", "convert to", "god will punish you",
		"repent or",
	)

	MedicalAdvice = newList("medical_advice",
		"you should take", "stop taking your", "you don't need a doctor",
		"increase your dose", "double the dose", "skip your medication",
		"instead of medication", "i can diagnose", "this cures",
		"miracle cure", "big pharma is lying",
	)

	Spam = newList("spam",
		"buy now", "click here", "limited time offer", "free money",
		"visit my website", "dm me for", "promo code", "earn cash fast",
		"work from home opportunity", "crypto giveaway",
	)
)

// PersonalData matches raw personal-data shapes. The expressions follow the
// usual phone/email/SSN detection patterns: a leaked number or address is a
// hard block that no provider fallback may override.
var PersonalData = newRegexList("personal_data",
	`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, // email
	`\b\d{3}[-\s]\d{2}[-\s]\d{4}\b`,                      // SSN-like
	`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`,                      // (555) 123-4567
	`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`,                    // 555-123-4567
	`\b\+?\d{9,12}\b`,                                    // bare number runs
)

// Emergency terms checked by the safety signal detector. Matching never
// blocks delivery; it only triggers the contact-staff prompt.
var Emergency = newList("emergency",
	"chest pain", "heart attack", "stroke", "seizure", "overdose",
	"can't breathe", "cannot breathe", "unconscious", "passed out",
	"bleeding heavily", "severe allergic reaction", "anaphylaxis",
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"hurt myself", "self harm",
)
