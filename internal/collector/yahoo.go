package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"StockTracker/internal/common"
	"StockTracker/internal/model"
)

// YahooFetcher implements Fetcher against the Yahoo Finance public API,
// which carries both NSE (.NS) and BSE (.BO) listings.
type YahooFetcher struct {
	client *resty.Client
	logger *common.Logger
}

// NewYahooFetcher creates a fetcher with optional proxy support.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration, logger *common.Logger) *YahooFetcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0").
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooFetcher{client: client, logger: logger}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// rawValue is Yahoo's {raw, fmt} number wrapper; only raw matters here.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *yahooError          `json:"error"`
	} `json:"quoteSummary"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	Price struct {
		LongName                   string   `json:"longName"`
		RegularMarketPrice         rawValue `json:"regularMarketPrice"`
		RegularMarketPreviousClose rawValue `json:"regularMarketPreviousClose"`
		RegularMarketOpen          rawValue `json:"regularMarketOpen"`
		RegularMarketDayHigh       rawValue `json:"regularMarketDayHigh"`
		RegularMarketDayLow        rawValue `json:"regularMarketDayLow"`
		RegularMarketVolume        rawValue `json:"regularMarketVolume"`
		MarketCap                  rawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail struct {
		FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
		TrailingPE       rawValue `json:"trailingPE"`
		DividendYield    rawValue `json:"dividendYield"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics struct {
		TrailingEps rawValue `json:"trailingEps"`
	} `json:"defaultKeyStatistics"`
	FinancialData struct {
		ReturnOnEquity rawValue `json:"returnOnEquity"`
	} `json:"financialData"`
	AssetProfile struct {
		Sector string `json:"sector"`
	} `json:"assetProfile"`
}

// FetchQuote retrieves the snapshot for a symbol. A nominally successful
// response without a current price maps to ErrInvalidSymbol.
func (f *YahooFetcher) FetchQuote(ctx context.Context, symbol string) (model.QuoteSnapshot, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("modules", "price,summaryDetail,defaultKeyStatistics,financialData,assetProfile").
		Get("/v10/finance/quoteSummary/" + symbol)
	if err != nil {
		return model.QuoteSnapshot{}, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return model.QuoteSnapshot{}, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}
	if resp.StatusCode() != http.StatusOK {
		return model.QuoteSnapshot{}, fmt.Errorf("yahoo quote %s: status %d", symbol, resp.StatusCode())
	}

	var out quoteSummaryResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return model.QuoteSnapshot{}, fmt.Errorf("yahoo quote %s: decode: %w", symbol, err)
	}
	if out.QuoteSummary.Error != nil {
		f.logger.Debug().
			Str("symbol", symbol).
			Str("code", out.QuoteSummary.Error.Code).
			Msg("yahoo quote error payload")
		return model.QuoteSnapshot{}, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return model.QuoteSnapshot{}, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}

	r := out.QuoteSummary.Result[0]
	if r.Price.RegularMarketPrice.Raw == nil {
		return model.QuoteSnapshot{}, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}

	snap := model.QuoteSnapshot{
		Symbol:        symbol,
		Name:          r.Price.LongName,
		CurrentPrice:  r.Price.RegularMarketPrice.Raw,
		PreviousClose: r.Price.RegularMarketPreviousClose.Raw,
		Open:          r.Price.RegularMarketOpen.Raw,
		DayHigh:       r.Price.RegularMarketDayHigh.Raw,
		DayLow:        r.Price.RegularMarketDayLow.Raw,
		High52W:       r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		Low52W:        r.SummaryDetail.FiftyTwoWeekLow.Raw,
		MarketCap:     r.Price.MarketCap.Raw,
		Volume:        r.Price.RegularMarketVolume.Raw,
		TrailingPE:    r.SummaryDetail.TrailingPE.Raw,
		TrailingEPS:   r.DefaultKeyStatistics.TrailingEps.Raw,
		DividendYield: r.SummaryDetail.DividendYield.Raw,
		Sector:        r.AssetProfile.Sector,
	}
	if roe := r.FinancialData.ReturnOnEquity.Raw; roe != nil {
		// Yahoo reports ROE as a fraction; downstream thresholds are in percent.
		pct := *roe * 100
		snap.ReturnOnEquity = &pct
	}
	return snap, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

// FetchDailyHistory retrieves one trailing year of daily bars.
func (f *YahooFetcher) FetchDailyHistory(ctx context.Context, symbol string) ([]model.OHLCV, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    "1y",
		}).
		Get("/v8/finance/chart/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo history %s: %w", symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("yahoo history %s: status %d", symbol, resp.StatusCode())
	}

	var out chartResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("yahoo history %s: decode: %w", symbol, err)
	}
	if out.Chart.Error != nil {
		return nil, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}
	if len(out.Chart.Result) == 0 || len(out.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoHistoricalData)
	}

	result := out.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoHistoricalData)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]model.OHLCV, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := deref(quote.Close, i)
		if c == 0 {
			continue // null bars on holidays
		}
		bars = append(bars, model.OHLCV{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   deref(quote.Open, i),
			High:   deref(quote.High, i),
			Low:    deref(quote.Low, i),
			Close:  c,
			Volume: deref(quote.Volume, i),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoHistoricalData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return dedupeDates(bars), nil
}

func deref(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return 0
	}
	return *vals[i]
}

// dedupeDates drops repeated calendar dates, keeping the last bar seen for
// each date so the series stays strictly increasing.
func dedupeDates(bars []model.OHLCV) []model.OHLCV {
	out := bars[:0]
	for _, b := range bars {
		day := b.Date.Format("2006-01-02")
		if len(out) > 0 && out[len(out)-1].Date.Format("2006-01-02") == day {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
