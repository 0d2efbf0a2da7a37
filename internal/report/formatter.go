// Package report renders pipeline results as plain text for any consumer
// surface (CLI, logs, future API).
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockTracker/internal/collector"
	"StockTracker/internal/model"
)

// FormatMarketStatus renders the market-status banner.
func FormatMarketStatus(open bool, status string) string {
	if open {
		return fmt.Sprintf("🟢 %s", status)
	}
	return fmt.Sprintf("🔴 %s\nShowing last available market data", status)
}

// FormatStockInsight renders the single-stock view: summary table,
// indicators, and the pros/cons panel.
func FormatStockInsight(data *model.StockData, ins model.Insights) string {
	var b strings.Builder
	snap := data.Snapshot

	name := snap.Name
	if name == "" {
		name = data.Symbol
	}
	b.WriteString(fmt.Sprintf("📈 %s (%s)\n\n", name, data.Symbol))

	b.WriteString("Stock Summary:\n")
	writeMetric(&b, "Current Price", money(snap.CurrentPrice))
	writeMetric(&b, "Previous Close", money(snap.PreviousClose))
	writeMetric(&b, "Open", money(snap.Open))
	writeMetric(&b, "Day High", money(snap.DayHigh))
	writeMetric(&b, "Day Low", money(snap.DayLow))
	writeMetric(&b, "52 Week High", money(snap.High52W))
	writeMetric(&b, "52 Week Low", money(snap.Low52W))
	writeMetric(&b, "Market Cap", large(snap.MarketCap))
	writeMetric(&b, "Volume", large(snap.Volume))

	b.WriteString("\nTechnical Indicators:\n")
	writeIndicator(&b, "MA20", data.Indicators.LatestMA20)
	writeIndicator(&b, "MA50", data.Indicators.LatestMA50)
	writeIndicator(&b, "MA200", data.Indicators.LatestMA200)
	writeIndicator(&b, fmt.Sprintf("RSI(%d)", data.Indicators.RSIPeriod), data.Indicators.LatestRSI)

	b.WriteString("\n✅ Pros:\n")
	if len(ins.Pros) == 0 {
		b.WriteString("  No strong positive indicators found.\n")
	}
	for _, p := range ins.Pros {
		b.WriteString(fmt.Sprintf("  ✔ %s\n", p))
	}

	b.WriteString("\n❌ Cons:\n")
	if len(ins.Cons) == 0 {
		b.WriteString("  No major risks identified.\n")
	}
	for _, c := range ins.Cons {
		b.WriteString(fmt.Sprintf("  ⚠ %s\n", c))
	}

	return b.String()
}

// FormatIndices renders the benchmark index strip.
func FormatIndices(results []collector.IndexResult) string {
	var b strings.Builder
	b.WriteString("📊 NSE & BSE Indices\n\n")
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(fmt.Sprintf("%s: data unavailable\n", r.Index.Name))
			continue
		}
		snap := r.Data.Snapshot
		price := *snap.CurrentPrice
		var change, changePct float64
		if prev := snap.PreviousClose; prev != nil {
			change = price - *prev
			if *prev != 0 {
				changePct = change / *prev * 100
			}
		}
		b.WriteString(fmt.Sprintf("%s: ₹%s  %+.2f (%+.2f%%)\n",
			r.Index.Name, humanize.CommafWithDigits(price, 2), change, changePct))
	}
	return b.String()
}

// FormatPortfolioSnapshot renders the portfolio table and summary.
func FormatPortfolioSnapshot(snap *model.PortfolioSnapshot) string {
	var b strings.Builder
	s := snap.Summary

	b.WriteString("📊 Portfolio Snapshot\n\n")
	b.WriteString(fmt.Sprintf("Total Portfolio Value: ₹%s\n", humanize.CommafWithDigits(s.TotalValue, 2)))
	b.WriteString(fmt.Sprintf("Total Change: %+.2f (%+.2f%%)\n", s.TotalChange, s.TotalChangePct))
	b.WriteString(fmt.Sprintf("Best Performer: %s\n", s.BestPerformer))
	b.WriteString(fmt.Sprintf("Worst Performer: %s\n", s.WorstPerformer))
	b.WriteString(fmt.Sprintf("Last Updated: %s\n", s.Timestamp.Format("2006-01-02 15:04:05 MST")))

	if len(s.InvalidSymbols) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠ Unable to fetch data for: %s\n", strings.Join(s.InvalidSymbols, ", ")))
	}

	b.WriteString("\nPortfolio Details:\n")
	b.WriteString("  Symbol | Price | Change | Change % | 52W High | 52W Low | From High % | From Low %\n")
	for _, r := range snap.Rows {
		b.WriteString(fmt.Sprintf("  %s | ₹%s | %+.2f | %+.2f%% | %s | %s | %.2f%% | %.2f%%\n",
			r.Symbol,
			humanize.CommafWithDigits(r.CurrentPrice, 2),
			r.Change, r.ChangePct,
			naZero(r.High52W), naZero(r.Low52W),
			r.DistanceFromHighPct, r.DistanceFromLowPct))
	}
	return b.String()
}

func writeMetric(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %-15s %s\n", label+":", value))
}

func writeIndicator(b *strings.Builder, label string, latest func() (float64, bool)) {
	v, ok := latest()
	if !ok {
		writeMetric(b, label, "N/A")
		return
	}
	writeMetric(b, label, fmt.Sprintf("%.2f", v))
}

// money formats an optional rupee amount, N/A when absent.
func money(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return "₹" + humanize.CommafWithDigits(*v, 2)
}

// large formats an optional large count (market cap, volume).
func large(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Comma(int64(*v))
}

func naZero(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return "₹" + humanize.CommafWithDigits(v, 2)
}
