package domain

import "fmt"

// EngagementLevel is the closed set of engagement tiers.
type EngagementLevel string

const (
	EngagementLow      EngagementLevel = "low"
	EngagementModerate EngagementLevel = "moderate"
	EngagementHigh     EngagementLevel = "high"
	EngagementViral    EngagementLevel = "viral"
)

// EngagementLevels lists every engagement level in ascending order.
var EngagementLevels = []EngagementLevel{EngagementLow, EngagementModerate, EngagementHigh, EngagementViral}

// Valid reports whether l is one of the known levels.
func (l EngagementLevel) Valid() bool {
	switch l {
	case EngagementLow, EngagementModerate, EngagementHigh, EngagementViral:
		return true
	}
	return false
}

// ParseEngagementLevel converts a stored or transported value into a level.
func ParseEngagementLevel(s string) (EngagementLevel, error) {
	l := EngagementLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown engagement level %q", s)
	}
	return l, nil
}

// Sentiment is the closed set of coverage sentiments.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists every sentiment value.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// ParseSentiment converts a stored or transported value into a sentiment.
func ParseSentiment(s string) (Sentiment, error) {
	v := Sentiment(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown sentiment %q", s)
	}
	return v, nil
}
