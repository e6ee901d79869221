package service

import (
	"strings"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

var positiveWords = []string{
	"happy", "great", "awesome", "excited", "good", "amazing", "fantastic",
	"grateful", "peaceful", "love", "joyful", "content", "optimistic",
}

var negativeWords = []string{
	"sad", "depressed", "anxious", "stressed", "worried", "miserable", "unhappy",
	"gloomy", "down", "upset", "angry", "frustrated", "lonely",
}

// ClassifySentiment counts how many distinct vocabulary words occur anywhere
// in the lower-cased text. Matching is substring containment, so "unhappy"
// counts for both "happy" and "unhappy".
func ClassifySentiment(text string) domain.SentimentVerdict {
	lower := strings.ToLower(text)
	verdict := domain.SentimentVerdict{
		PositiveCount: countMatches(lower, positiveWords),
		NegativeCount: countMatches(lower, negativeWords),
	}

	switch {
	case verdict.PositiveCount > verdict.NegativeCount:
		verdict.Sentiment = domain.SentimentPositive
	case verdict.NegativeCount > verdict.PositiveCount:
		verdict.Sentiment = domain.SentimentNegative
	default:
		verdict.Sentiment = domain.SentimentNeutral
	}
	return verdict
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
