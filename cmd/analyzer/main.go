package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/fundamental"
	"StockScope/internal/recorder"
	"StockScope/internal/scheduler"
)

var (
	cfgPath    string
	period     string
	interval   string
	exportPath string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "analyzer TICKER...",
	Short: "주식 기술 지표 분석 CLI",
	Long: `Yahoo Finance 데이터를 이용해 주식의 주요 기술 지표(RSI, SMA, MACD)와
기업 가치 지표(PER, PBR, ROE)를 계산하고 종합 판단을 출력합니다.

예: analyzer AAPL --period 1y --interval 1d
    analyzer 005930.KS MSFT --export out.csv`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "config file (default configs/config.yaml)")
	rootCmd.Flags().StringVar(&period, "period", "1y", "데이터 기간 (예: 1mo, 6mo, 1y, 5y)")
	rootCmd.Flags().StringVar(&interval, "interval", "1d", "데이터 간격 (예: 1d, 1h, 30m)")
	rootCmd.Flags().StringVar(&exportPath, "export", "", "보조 지표가 포함된 전체 데이터를 CSV 파일로 저장")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "설정된 크론 주기로 반복 분석")
}

func run(_ *cobra.Command, args []string) error {
	// Load config
	path := cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	// Init fetcher and fundamentals providers
	fetcher := collector.NewYahooFetcher(cfg.DataSource.Proxy)
	var regional fundamental.RegionalProvider
	if cfg.DataSource.KRX.BaseURL != "" {
		regional = fundamental.NewKRXProvider(cfg.DataSource.KRX.BaseURL, cfg.DataSource.KRX.APIKey, cfg.DataSource.Proxy)
	}
	normalizer := fundamental.NewNormalizer(
		fundamental.NewYahooProvider(cfg.DataSource.Proxy),
		regional,
		cfg.Fundamental.RegionalSuffixes,
	)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := &analyzer.Runner{
		Collector:    collector.NewCollector(fetcher),
		Fundamentals: normalizer,
		Recorder:     rec,
		Params:       cfg.Params(),
		Thresholds:   cfg.Thresholds(),
		Out:          os.Stdout,
	}

	tickers := make([]string, len(args))
	for i, a := range args {
		tickers[i] = strings.ToUpper(strings.TrimSpace(a))
	}

	analyzeOne := func(ticker string) error {
		return runner.Analyze(analyzer.Request{
			Ticker:     ticker,
			Period:     period,
			Interval:   interval,
			ExportPath: exportPath,
		})
	}

	if watch {
		sched := scheduler.NewScheduler(tickers, analyzeOne)
		if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
		sched.RunNow()

		log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		return nil
	}

	// One-shot mode: sibling tickers stay independent; a failed ticker
	// prints its diagnostic and the process reports overall failure.
	failed := 0
	for _, ticker := range tickers {
		if err := analyzeOne(ticker); err != nil {
			failed++
			fmt.Printf("오류: %v\n", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d/%d개 티커 분석 실패", failed, len(tickers))
	}
	return nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
