package model

// Sentiment is the polarity label attached to a news item.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// NewsItem is one headline with its sentiment label.
type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Sentiment   Sentiment `json:"sentiment"`
}
