package insight

import "StockTracker/internal/model"

// SectorPESource supplies a reference P/E ratio per sector. Unknown sectors
// yield no comparison rather than a default number.
type SectorPESource interface {
	SectorPE(sector string) (float64, bool)
}

// SentimentSource supplies a qualitative news sentiment per symbol.
// Unknown symbols default to neutral.
type SentimentSource interface {
	Sentiment(symbol string) model.Sentiment
}

// StaticSectorPE is an in-memory SectorPESource.
type StaticSectorPE map[string]float64

func (s StaticSectorPE) SectorPE(sector string) (float64, bool) {
	pe, ok := s[sector]
	return pe, ok
}

// DefaultSectorPE returns reference trailing P/E averages for the sectors
// Yahoo reports on Indian listings.
func DefaultSectorPE() StaticSectorPE {
	return StaticSectorPE{
		"Technology":             25,
		"Financial Services":     18,
		"Energy":                 12,
		"Healthcare":             30,
		"Consumer Defensive":     40,
		"Consumer Cyclical":      35,
		"Industrials":            22,
		"Basic Materials":        15,
		"Utilities":              10,
		"Communication Services": 20,
		"Real Estate":            28,
	}
}

// StaticSentiment is an in-memory SentimentSource.
type StaticSentiment map[string]model.Sentiment

func (s StaticSentiment) Sentiment(symbol string) model.Sentiment {
	if v, ok := s[symbol]; ok {
		return v
	}
	return model.SentimentNeutral
}

// DefaultSentiment returns a small fixed sentiment table. A genuine news
// source can replace it without touching rule evaluation.
func DefaultSentiment() StaticSentiment {
	return StaticSentiment{
		"TCS.NS":      model.SentimentPositive,
		"INFY.NS":     model.SentimentPositive,
		"RELIANCE.NS": model.SentimentPositive,
		"HDFCBANK.NS": model.SentimentPositive,
		"ITC.NS":      model.SentimentNeutral,
		"YESBANK.NS":  model.SentimentNegative,
		"IDEA.NS":     model.SentimentNegative,
	}
}
