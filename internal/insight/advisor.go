// Package insight derives qualitative pros and cons for a stock from its
// quote snapshot and computed indicators.
package insight

import (
	"fmt"

	"StockTracker/internal/model"
)

// Advisor evaluates a fixed, ordered list of independent threshold rules.
// Each rule may add one pro, one con, or nothing; a rule whose inputs are
// absent contributes nothing rather than failing.
type Advisor struct {
	sectors   SectorPESource
	sentiment SentimentSource
}

// NewAdvisor creates an Advisor. Nil sources fall back to the static tables.
func NewAdvisor(sectors SectorPESource, sentiment SentimentSource) *Advisor {
	if sectors == nil {
		sectors = DefaultSectorPE()
	}
	if sentiment == nil {
		sentiment = DefaultSentiment()
	}
	return &Advisor{sectors: sectors, sentiment: sentiment}
}

// evalContext is the typed input each rule reads from.
type evalContext struct {
	price     float64
	ma50      float64
	ma200     float64
	hasMA50   bool
	hasMA200  bool
	rsi       float64
	hasRSI    bool
	snap      model.QuoteSnapshot
	sectorPE  float64
	hasSector bool
	sentiment model.Sentiment
}

// rule is one predicate→effect entry. Evaluation order fixes output order.
type rule func(c *evalContext) (pro, con string)

var rules = []rule{
	trendRule,
	rsiBandRule,
	proximity52WRule,
	valuationRule,
	profitabilityRule,
	epsRule,
	dividendRule,
	sectorPERule,
	sentimentRule,
}

// Derive evaluates all rules in order. A snapshot without a current price
// yields empty insights; such snapshots should never reach this point.
func (a *Advisor) Derive(snap model.QuoteSnapshot, ind model.IndicatorSeries) model.Insights {
	if snap.CurrentPrice == nil {
		return model.Insights{}
	}

	c := &evalContext{price: *snap.CurrentPrice, snap: snap}
	c.ma50, c.hasMA50 = ind.LatestMA50()
	c.ma200, c.hasMA200 = ind.LatestMA200()
	c.rsi, c.hasRSI = ind.LatestRSI()
	if snap.Sector != "" {
		c.sectorPE, c.hasSector = a.sectors.SectorPE(snap.Sector)
	}
	c.sentiment = a.sentiment.Sentiment(snap.Symbol)

	var out model.Insights
	for _, r := range rules {
		pro, con := r(c)
		if pro != "" {
			out.Pros = append(out.Pros, pro)
		}
		if con != "" {
			out.Cons = append(out.Cons, con)
		}
	}
	return out
}

func trendRule(c *evalContext) (string, string) {
	if !c.hasMA50 || !c.hasMA200 {
		return "", ""
	}
	if c.price > c.ma50 && c.price > c.ma200 {
		return "Price is trading above both the 50-day and 200-day moving averages (uptrend)", ""
	}
	if c.price < c.ma50 || c.price < c.ma200 {
		return "", "Price is below the 50-day or 200-day moving average (weak trend)"
	}
	return "", ""
}

func rsiBandRule(c *evalContext) (string, string) {
	if !c.hasRSI {
		return "", ""
	}
	switch {
	case c.rsi > 30 && c.rsi < 70:
		return fmt.Sprintf("RSI at %.1f indicates healthy momentum", c.rsi), ""
	case c.rsi > 70:
		return "", fmt.Sprintf("RSI at %.1f signals overbought conditions", c.rsi)
	case c.rsi < 30:
		return "", fmt.Sprintf("RSI at %.1f signals oversold conditions", c.rsi)
	}
	return "", ""
}

func proximity52WRule(c *evalContext) (string, string) {
	if h := c.snap.High52W; h != nil && c.price >= 0.95**h {
		return "Trading within 5% of its 52-week high", ""
	}
	if l := c.snap.Low52W; l != nil && c.price <= 1.05**l {
		return "", "Trading near its 52-week low"
	}
	return "", ""
}

func valuationRule(c *evalContext) (string, string) {
	pe := c.snap.TrailingPE
	if pe == nil {
		return "", ""
	}
	if *pe < 20 {
		return fmt.Sprintf("Attractive valuation with a P/E of %.1f", *pe), ""
	}
	if *pe > 50 {
		return "", fmt.Sprintf("Expensive valuation with a P/E of %.1f", *pe)
	}
	return "", ""
}

func profitabilityRule(c *evalContext) (string, string) {
	roe := c.snap.ReturnOnEquity
	if roe == nil {
		return "", ""
	}
	switch {
	case *roe > 15:
		return fmt.Sprintf("Strong return on equity (%.1f%%)", *roe), ""
	case *roe > 8:
		return fmt.Sprintf("Moderate return on equity (%.1f%%)", *roe), ""
	default:
		return "", fmt.Sprintf("Low return on equity (%.1f%%)", *roe)
	}
}

func epsRule(c *evalContext) (string, string) {
	eps := c.snap.TrailingEPS
	if eps == nil {
		return "", ""
	}
	switch {
	case *eps > 30:
		return fmt.Sprintf("Very strong earnings per share (%.2f)", *eps), ""
	case *eps > 10:
		return fmt.Sprintf("Good earnings per share (%.2f)", *eps), ""
	default:
		return "", fmt.Sprintf("Weak earnings per share (%.2f)", *eps)
	}
}

// dividendRule is the one rule where absence is a signal: no yield means no
// dividend, which is itself a con.
func dividendRule(c *evalContext) (string, string) {
	y := c.snap.DividendYield
	if y != nil && *y > 0 {
		return fmt.Sprintf("Pays a dividend (yield %.2f%%)", *y*100), ""
	}
	return "", "Does not pay a dividend"
}

func sectorPERule(c *evalContext) (string, string) {
	pe := c.snap.TrailingPE
	if pe == nil || !c.hasSector {
		return "", ""
	}
	if *pe < c.sectorPE {
		return fmt.Sprintf("P/E below the %s sector average of %.1f", c.snap.Sector, c.sectorPE), ""
	}
	return "", fmt.Sprintf("P/E above the %s sector average of %.1f", c.snap.Sector, c.sectorPE)
}

func sentimentRule(c *evalContext) (string, string) {
	switch c.sentiment {
	case model.SentimentPositive:
		return "Recent news sentiment is positive", ""
	case model.SentimentNegative:
		return "", "Recent news sentiment is negative"
	default:
		return "Neutral news sentiment suggests a stable outlook", ""
	}
}
