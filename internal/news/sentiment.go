package news

import (
	"strings"
	"unicode"

	"stockdash/internal/model"
)

// Label thresholds: polarity above 0.1 reads positive, below -0.1 negative,
// anything in between neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// valences maps sentiment-bearing words to a polarity in [-1, 1]. Weighted
// toward financial-news vocabulary.
var valences = map[string]float64{
	"gain": 0.5, "gains": 0.5, "surge": 0.7, "surges": 0.7, "soar": 0.8,
	"soars": 0.8, "rally": 0.6, "rallies": 0.6, "jump": 0.5, "jumps": 0.5,
	"record": 0.4, "beat": 0.5, "beats": 0.5, "strong": 0.5, "growth": 0.5,
	"profit": 0.5, "profits": 0.5, "upgrade": 0.6, "upgraded": 0.6,
	"bullish": 0.7, "outperform": 0.6, "positive": 0.5, "good": 0.4,
	"great": 0.7, "excellent": 0.8, "best": 0.7, "win": 0.5, "wins": 0.5,
	"success": 0.6, "successful": 0.6, "boost": 0.5, "boosts": 0.5,
	"recovery": 0.4, "rebound": 0.4, "rebounds": 0.4, "optimistic": 0.6,
	"expand": 0.3, "expands": 0.3, "breakthrough": 0.6, "dividend": 0.2,

	"loss": -0.5, "losses": -0.5, "fall": -0.4, "falls": -0.4, "drop": -0.4,
	"drops": -0.4, "plunge": -0.7, "plunges": -0.7, "crash": -0.9,
	"crashes": -0.9, "slump": -0.6, "slumps": -0.6, "tumble": -0.6,
	"tumbles": -0.6, "weak": -0.5, "decline": -0.4, "declines": -0.4,
	"miss": -0.5, "misses": -0.5, "downgrade": -0.6, "downgraded": -0.6,
	"bearish": -0.7, "underperform": -0.6, "negative": -0.5, "bad": -0.4,
	"worst": -0.8, "poor": -0.5, "fail": -0.6, "fails": -0.6,
	"failure": -0.6, "lawsuit": -0.5, "fraud": -0.8, "probe": -0.4,
	"investigation": -0.4, "bankruptcy": -0.9, "layoff": -0.6,
	"layoffs": -0.6, "warning": -0.4, "fear": -0.5, "fears": -0.5,
	"risk": -0.3, "risks": -0.3, "debt": -0.3, "selloff": -0.7,
	"recession": -0.6, "cut": -0.3, "cuts": -0.3, "concern": -0.4,
	"concerns": -0.4,
}

// negators flip the sign of the following sentiment-bearing word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "without": true,
	"isnt": true, "wasnt": true, "doesnt": true, "didnt": true,
}

// Polarity scores a short text in [-1, 1]: the mean valence of the
// sentiment-bearing words it contains, 0 when there are none.
func Polarity(text string) float64 {
	if text == "" {
		return 0
	}

	tokens := tokenize(text)
	var sum float64
	var matched int
	negate := false

	for _, tok := range tokens {
		if negators[tok] {
			negate = true
			continue
		}
		if v, ok := valences[tok]; ok {
			if negate {
				v = -v
			}
			sum += v
			matched++
		}
		negate = false
	}

	if matched == 0 {
		return 0
	}
	return sum / float64(matched)
}

// Label converts a polarity score into the dashboard sentiment label.
func Label(polarity float64) model.Sentiment {
	switch {
	case polarity > positiveThreshold:
		return model.SentimentPositive
	case polarity < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
