package model

// Sentiment is the qualitative news sentiment for a symbol.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Insights holds the qualitative pros and cons derived for one stock.
// Order follows the fixed rule-evaluation sequence of the advisor.
type Insights struct {
	Pros []string
	Cons []string
}
