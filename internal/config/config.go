package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"StockPulse/internal/analyzer"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watchlist struct {
		Symbols     []string `yaml:"symbols"`
		HistoryDays int      `yaml:"history_days"`
		NewsLimit   int      `yaml:"news_limit"`
	} `yaml:"watchlist"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Analysis struct {
		RSIOversold       float64 `yaml:"rsi_oversold"`
		RSIOverbought     float64 `yaml:"rsi_overbought"`
		MomentumBars      int     `yaml:"momentum_bars"`
		MomentumThreshold float64 `yaml:"momentum_threshold"`
		SMASlopeBars      int     `yaml:"sma_slope_bars"`
		CrossLookback     int     `yaml:"cross_lookback"`
		MomentumPeriods   []int   `yaml:"momentum_periods"`
		RangeBars         int     `yaml:"range_bars"`
	} `yaml:"analysis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCH_SYMBOLS"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("HISTORY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Watchlist.HistoryDays = n
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"AAPL"}
	}
	if cfg.Watchlist.HistoryDays == 0 {
		cfg.Watchlist.HistoryDays = 400
	}
	if cfg.Watchlist.NewsLimit == 0 {
		cfg.Watchlist.NewsLimit = 10
	}
	if cfg.Schedule.DailyCron == "" {
		// After the US close, Mon-Fri
		cfg.Schedule.DailyCron = "0 30 21 * * 1-5"
	}
	if cfg.Analysis.RSIOversold == 0 {
		cfg.Analysis.RSIOversold = 30
	}
	if cfg.Analysis.RSIOverbought == 0 {
		cfg.Analysis.RSIOverbought = 70
	}
	if cfg.Analysis.MomentumBars == 0 {
		cfg.Analysis.MomentumBars = 14
	}
	if cfg.Analysis.MomentumThreshold == 0 {
		cfg.Analysis.MomentumThreshold = 2
	}
	if cfg.Analysis.SMASlopeBars == 0 {
		cfg.Analysis.SMASlopeBars = 5
	}
	if cfg.Analysis.CrossLookback == 0 {
		cfg.Analysis.CrossLookback = 5
	}
	if cfg.Analysis.RangeBars == 0 {
		cfg.Analysis.RangeBars = 252
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockpulse.db"
	}

	return cfg, nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols must not be empty")
	}
	if c.Analysis.RSIOversold >= c.Analysis.RSIOverbought {
		return fmt.Errorf("analysis.rsi_oversold must be below rsi_overbought")
	}
	return nil
}

// AnalyzerConfig maps the analysis section onto the pipeline configuration.
func (c *Config) AnalyzerConfig() analyzer.Config {
	ac := analyzer.DefaultConfig()
	ac.Indicator.MomentumPeriods = c.Analysis.MomentumPeriods
	ac.Signal.RSIOversold = c.Analysis.RSIOversold
	ac.Signal.RSIOverbought = c.Analysis.RSIOverbought
	ac.Signal.MomentumBars = c.Analysis.MomentumBars
	ac.Signal.MomentumThreshold = c.Analysis.MomentumThreshold
	ac.Signal.SMASlopeBars = c.Analysis.SMASlopeBars
	ac.Signal.CrossLookback = c.Analysis.CrossLookback
	ac.Narrative.RangeBars = c.Analysis.RangeBars
	ac.Narrative.VolLookback = c.Analysis.RangeBars
	return ac
}
