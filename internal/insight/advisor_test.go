package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockTracker/internal/model"
)

func fptr(v float64) *float64 { return &v }

func indicators(ma50, ma200, rsi float64) model.IndicatorSeries {
	return model.IndicatorSeries{
		MA50:      []float64{ma50},
		MA200:     []float64{ma200},
		RSI:       []float64{rsi},
		RSIPeriod: 14,
	}
}

func TestDeriveAllPositive(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{
		Symbol:         "TCS.NS",
		CurrentPrice:   fptr(100),
		High52W:        fptr(200),
		Low52W:         fptr(50),
		TrailingPE:     fptr(15),
		TrailingEPS:    fptr(35),
		ReturnOnEquity: fptr(20),
		DividendYield:  fptr(0.015),
		Sector:         "Technology",
	}

	ins := a.Derive(snap, indicators(90, 80, 55))

	assert.Len(t, ins.Pros, 8)
	assert.Empty(t, ins.Cons)
}

func TestDeriveRuleOrderIsStable(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{
		Symbol:        "TCS.NS",
		CurrentPrice:  fptr(100),
		TrailingPE:    fptr(15),
		DividendYield: fptr(0.015),
		Sector:        "Technology",
	}

	ins := a.Derive(snap, indicators(90, 80, 55))

	require.Len(t, ins.Pros, 6)
	assert.Contains(t, ins.Pros[0], "moving averages")
	assert.Contains(t, ins.Pros[1], "RSI")
	assert.Contains(t, ins.Pros[2], "P/E of 15.0")
	assert.Contains(t, ins.Pros[3], "dividend")
	assert.Contains(t, ins.Pros[4], "sector average")
	assert.Contains(t, ins.Pros[5], "sentiment")
}

func TestDeriveMinimalSnapshot(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{Symbol: "UNKNOWN.NS", CurrentPrice: fptr(100)}

	ins := a.Derive(snap, model.IndicatorSeries{})

	require.Len(t, ins.Pros, 1)
	assert.Contains(t, ins.Pros[0], "Neutral news sentiment")
	require.Len(t, ins.Cons, 1)
	assert.Equal(t, "Does not pay a dividend", ins.Cons[0])
}

func TestDeriveNoCurrentPrice(t *testing.T) {
	a := NewAdvisor(nil, nil)

	ins := a.Derive(model.QuoteSnapshot{Symbol: "TCS.NS"}, indicators(90, 80, 55))

	assert.Empty(t, ins.Pros)
	assert.Empty(t, ins.Cons)
}

func TestDeriveWeakTrend(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(70)}

	ins := a.Derive(snap, indicators(90, 80, 55))

	require.NotEmpty(t, ins.Cons)
	assert.Contains(t, ins.Cons[0], "weak trend")
}

func TestDeriveRSIBands(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(100)}

	over := a.Derive(snap, model.IndicatorSeries{RSI: []float64{75}})
	assert.Contains(t, over.Cons[0], "overbought")

	under := a.Derive(snap, model.IndicatorSeries{RSI: []float64{25}})
	assert.Contains(t, under.Cons[0], "oversold")
}

func TestDerive52WeekProximity(t *testing.T) {
	a := NewAdvisor(nil, nil)

	nearHigh := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(196), High52W: fptr(200)}
	ins := a.Derive(nearHigh, model.IndicatorSeries{})
	assert.Contains(t, ins.Pros[0], "52-week high")

	nearLow := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(51), Low52W: fptr(50)}
	ins = a.Derive(nearLow, model.IndicatorSeries{})
	assert.Contains(t, ins.Cons[0], "52-week low")
}

func TestDeriveExpensiveValuation(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(100), TrailingPE: fptr(60)}

	ins := a.Derive(snap, model.IndicatorSeries{})

	assert.Contains(t, ins.Cons[0], "Expensive valuation")
}

func TestDeriveSectorComparison(t *testing.T) {
	a := NewAdvisor(StaticSectorPE{"Energy": 12}, StaticSentiment{})

	cheap := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(100), TrailingPE: fptr(10), Sector: "Energy"}
	ins := a.Derive(cheap, model.IndicatorSeries{})
	assert.Contains(t, ins.Pros, "P/E below the Energy sector average of 12.0")

	rich := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(100), TrailingPE: fptr(18), Sector: "Energy"}
	ins = a.Derive(rich, model.IndicatorSeries{})
	assert.Contains(t, ins.Cons, "P/E above the Energy sector average of 12.0")
}

func TestDeriveUnknownSectorSkipsComparison(t *testing.T) {
	a := NewAdvisor(nil, nil)
	snap := model.QuoteSnapshot{Symbol: "X.NS", CurrentPrice: fptr(100), TrailingPE: fptr(10), Sector: "Obscure"}

	ins := a.Derive(snap, model.IndicatorSeries{})

	for _, c := range ins.Cons {
		assert.NotContains(t, c, "sector average")
	}
	for _, p := range ins.Pros {
		assert.NotContains(t, p, "sector average")
	}
}

func TestDeriveNegativeSentiment(t *testing.T) {
	a := NewAdvisor(nil, StaticSentiment{"BAD.NS": model.SentimentNegative})
	snap := model.QuoteSnapshot{Symbol: "BAD.NS", CurrentPrice: fptr(100)}

	ins := a.Derive(snap, model.IndicatorSeries{})

	assert.Contains(t, ins.Cons, "Recent news sentiment is negative")
}
