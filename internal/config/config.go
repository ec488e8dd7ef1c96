package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"StockScope/internal/calculator"
	"StockScope/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Proxy string `yaml:"proxy"`
		KRX   struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"krx"`
	} `yaml:"data_source"`
	Indicators struct {
		RSIPeriod  int `yaml:"rsi_period"`
		SMAShort   int `yaml:"sma_short"`
		SMALong    int `yaml:"sma_long"`
		MACDFast   int `yaml:"macd_fast"`
		MACDSlow   int `yaml:"macd_slow"`
		MACDSignal int `yaml:"macd_signal"`
	} `yaml:"indicators"`
	Signal struct {
		Overbought float64 `yaml:"overbought"`
		Oversold   float64 `yaml:"oversold"`
	} `yaml:"signal"`
	Fundamental struct {
		RegionalSuffixes []string `yaml:"regional_suffixes"`
	} `yaml:"fundamental"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine: defaults carry the tool.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("KRX_BASE_URL"); v != "" {
		cfg.DataSource.KRX.BaseURL = v
	}
	if v := os.Getenv("KRX_API_KEY"); v != "" {
		cfg.DataSource.KRX.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}

	// Defaults
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Indicators.SMAShort == 0 {
		cfg.Indicators.SMAShort = 20
	}
	if cfg.Indicators.SMALong == 0 {
		cfg.Indicators.SMALong = 50
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 12
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Signal.Overbought == 0 {
		cfg.Signal.Overbought = 70
	}
	if cfg.Signal.Oversold == 0 {
		cfg.Signal.Oversold = 30
	}
	if len(cfg.Fundamental.RegionalSuffixes) == 0 {
		cfg.Fundamental.RegionalSuffixes = []string{".KS", ".KQ"}
	}
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	ind := c.Indicators
	for name, v := range map[string]int{
		"indicators.rsi_period":  ind.RSIPeriod,
		"indicators.sma_short":   ind.SMAShort,
		"indicators.sma_long":    ind.SMALong,
		"indicators.macd_fast":   ind.MACDFast,
		"indicators.macd_slow":   ind.MACDSlow,
		"indicators.macd_signal": ind.MACDSignal,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if ind.MACDFast >= ind.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be below macd_slow")
	}
	if c.Signal.Oversold >= c.Signal.Overbought {
		return fmt.Errorf("signal.oversold must be below signal.overbought")
	}
	return nil
}

// Params returns the configured indicator window lengths.
func (c *Config) Params() calculator.Params {
	return calculator.Params{
		RSIPeriod:  c.Indicators.RSIPeriod,
		SMAShort:   c.Indicators.SMAShort,
		SMALong:    c.Indicators.SMALong,
		MACDFast:   c.Indicators.MACDFast,
		MACDSlow:   c.Indicators.MACDSlow,
		MACDSignal: c.Indicators.MACDSignal,
	}
}

// Thresholds returns the configured RSI bands.
func (c *Config) Thresholds() strategy.Thresholds {
	return strategy.Thresholds{
		Overbought: c.Signal.Overbought,
		Oversold:   c.Signal.Oversold,
	}
}
