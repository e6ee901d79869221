package domain

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

type SentimentVerdict struct {
	Sentiment     Sentiment `json:"sentiment"`
	PositiveCount int       `json:"positive_count"`
	NegativeCount int       `json:"negative_count"`
}

func (v SentimentVerdict) Message() string {
	switch v.Sentiment {
	case SentimentPositive:
		return "You seem to be feeling positive!"
	case SentimentNegative:
		return "It seems like you're going through a tough time. Remember, it's okay to not be okay."
	default:
		return "Your feelings seem neutral. How can I help?"
	}
}
