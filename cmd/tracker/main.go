package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockTracker/internal/collector"
	"StockTracker/internal/common"
	"StockTracker/internal/config"
	"StockTracker/internal/insight"
	"StockTracker/internal/marketclock"
	"StockTracker/internal/portfolio"
	"StockTracker/internal/recorder"
	"StockTracker/internal/report"
	"StockTracker/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "analyze a single stock symbol and exit")
	showPortfolio := flag.Bool("portfolio", false, "print a portfolio snapshot and exit")
	showIndices := flag.Bool("indices", false, "print the tracked indices and exit")
	watch := flag.Bool("watch", false, "refresh the portfolio on the configured schedule")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.LogLevel)
	logger.Info().Str("provider", cfg.Provider.BaseURL).Msg("starting stock tracker")

	fetcher := collector.NewYahooFetcher(cfg.Provider.BaseURL, cfg.Provider.Proxy, cfg.Provider.Timeout, logger)
	coll := collector.NewCollector(fetcher, cfg.Indicators.RSIPeriod, logger)
	advisor := insight.NewAdvisor(nil, nil)
	agg := portfolio.NewAggregator(fetcher, cfg.Portfolio.MaxConcurrent, cfg.Portfolio.FetchTimeout, logger)
	clock := marketclock.New(nil, logger)

	ctx := context.Background()

	switch {
	case *symbol != "":
		runStock(ctx, coll, advisor, clock, *symbol, logger)
	case *showIndices:
		runIndices(ctx, coll, clock)
	case *watch:
		runWatch(ctx, cfg, agg, clock, logger)
	case *showPortfolio || len(cfg.Portfolio.Symbols) > 0:
		runPortfolio(ctx, cfg, agg, clock, logger)
	default:
		fmt.Fprintln(os.Stderr, "nothing to do: pass -symbol, -portfolio, -indices or -watch, or configure portfolio symbols")
		os.Exit(2)
	}
}

func runStock(ctx context.Context, coll *collector.Collector, advisor *insight.Advisor, clock *marketclock.Clock, symbol string, logger *common.Logger) {
	open, status := clock.Status(time.Now())
	fmt.Println(report.FormatMarketStatus(open, status))
	fmt.Println()

	data, err := coll.Collect(ctx, symbol)
	if err != nil {
		logger.Error().Err(err).Str("symbol", symbol).Msg("stock analysis failed")
		fmt.Fprintf(os.Stderr, "analyze %s: %v\n", symbol, err)
		os.Exit(1)
	}
	ins := advisor.Derive(data.Snapshot, data.Indicators)
	fmt.Println(report.FormatStockInsight(data, ins))
}

func runIndices(ctx context.Context, coll *collector.Collector, clock *marketclock.Clock) {
	open, status := clock.Status(time.Now())
	fmt.Println(report.FormatMarketStatus(open, status))
	fmt.Println()
	fmt.Println(report.FormatIndices(coll.CollectIndices(ctx)))
}

func runPortfolio(ctx context.Context, cfg *config.Config, agg *portfolio.Aggregator, clock *marketclock.Clock, logger *common.Logger) {
	open, status := clock.Status(time.Now())
	fmt.Println(report.FormatMarketStatus(open, status))
	fmt.Println()

	snap, err := agg.Snapshot(ctx, cfg.Portfolio.Symbols)
	if err != nil {
		logger.Error().Err(err).Msg("portfolio snapshot failed")
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(report.FormatPortfolioSnapshot(snap))

	rec := openRecorder(cfg, logger)
	defer rec.Close()
	if err := rec.RecordPortfolio(snap); err != nil {
		logger.Error().Err(err).Msg("record snapshot failed")
	}
}

func runWatch(ctx context.Context, cfg *config.Config, agg *portfolio.Aggregator, clock *marketclock.Clock, logger *common.Logger) {
	if len(cfg.Portfolio.Symbols) == 0 {
		fmt.Fprintln(os.Stderr, "watch mode needs portfolio symbols configured")
		os.Exit(2)
	}

	rec := openRecorder(cfg, logger)
	defer rec.Close()

	refresh := func() {
		open, status := clock.Status(time.Now())
		logger.Info().Bool("open", open).Str("status", status).Msg("refreshing portfolio")

		snap, err := agg.Snapshot(ctx, cfg.Portfolio.Symbols)
		if err != nil {
			logger.Error().Err(err).Msg("portfolio refresh failed")
			return
		}
		fmt.Println(report.FormatMarketStatus(open, status))
		fmt.Println()
		fmt.Println(report.FormatPortfolioSnapshot(snap))
		if err := rec.RecordPortfolio(snap); err != nil {
			logger.Error().Err(err).Msg("record snapshot failed")
		}
	}

	sched := scheduler.New(logger, refresh)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		fmt.Fprintf(os.Stderr, "scheduler: %v\n", err)
		os.Exit(1)
	}
	sched.Start()
	sched.RunNow()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	sched.Stop()
}

// openRecorder opens the configured sqlite recorder, falling back to a noop
// recorder when no path is configured or the database cannot be opened.
func openRecorder(cfg *config.Config, logger *common.Logger) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoop()
	}
	rec, err := recorder.NewSQLite(cfg.Database.SQLitePath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Database.SQLitePath).Msg("sqlite unavailable, snapshots will not be recorded")
		return recorder.NewNoop()
	}
	logger.Info().Str("path", cfg.Database.SQLitePath).Msg("recording snapshots to sqlite")
	return rec
}
