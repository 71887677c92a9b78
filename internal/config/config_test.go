package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv neutralizes ambient overrides so default behavior is observable.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "WATCH_SYMBOLS",
		"HISTORY_DAYS", "CRON_DAILY", "SQLITE_PATH", "HTTPS_PROXY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(cfg.Watchlist.Symbols) != 1 || cfg.Watchlist.Symbols[0] != "AAPL" {
		t.Errorf("unexpected default watchlist: %v", cfg.Watchlist.Symbols)
	}
	if cfg.Watchlist.HistoryDays != 400 {
		t.Errorf("expected 400 history days, got %d", cfg.Watchlist.HistoryDays)
	}
	if cfg.Analysis.RSIOversold != 30 || cfg.Analysis.RSIOverbought != 70 {
		t.Errorf("unexpected RSI bounds: %.0f/%.0f", cfg.Analysis.RSIOversold, cfg.Analysis.RSIOverbought)
	}
	if cfg.Analysis.MomentumBars != 14 {
		t.Errorf("expected 14 momentum bars, got %d", cfg.Analysis.MomentumBars)
	}
	if cfg.Schedule.DailyCron == "" {
		t.Error("expected a default cron expression")
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
telegram:
  bot_token: file-token
  chat_id: "123"
watchlist:
  symbols: [msft, goog]
  history_days: 500
analysis:
  rsi_oversold: 25
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("WATCH_SYMBOLS", "tsla, nvda")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("env should win over file, got %q", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.ChatID != "123" {
		t.Errorf("file value should survive, got %q", cfg.Telegram.ChatID)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[0] != "TSLA" || cfg.Watchlist.Symbols[1] != "NVDA" {
		t.Errorf("env symbols should be split and uppercased: %v", cfg.Watchlist.Symbols)
	}
	if cfg.Watchlist.HistoryDays != 500 {
		t.Errorf("expected 500 history days from file, got %d", cfg.Watchlist.HistoryDays)
	}
	if cfg.Analysis.RSIOversold != 25 {
		t.Errorf("expected oversold 25 from file, got %.0f", cfg.Analysis.RSIOversold)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("missing telegram credentials should fail validation")
	}
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
	cfg.Analysis.RSIOversold = 80
	if err := cfg.Validate(); err == nil {
		t.Error("inverted RSI bounds should fail validation")
	}
}

func TestAnalyzerConfig(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ac := cfg.AnalyzerConfig()
	if ac.Signal.MomentumBars != cfg.Analysis.MomentumBars {
		t.Errorf("momentum bars not mapped: %d vs %d", ac.Signal.MomentumBars, cfg.Analysis.MomentumBars)
	}
	if ac.Narrative.RangeBars != 252 {
		t.Errorf("expected 252 range bars, got %d", ac.Narrative.RangeBars)
	}
}
