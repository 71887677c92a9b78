package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"StockPulse/internal/analyzer"
	"StockPulse/internal/collector"
	"StockPulse/internal/model"
	"StockPulse/internal/notifier"
	"StockPulse/internal/recorder"
)

// Scheduler runs the analysis pipeline on a cron schedule and serves
// Telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Config    analyzer.Config
	Symbols   []string
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context

	mu          sync.Mutex
	lastReports map[string]*model.Report
}

// NewScheduler creates a Scheduler for the given watchlist.
func NewScheduler(ctx context.Context, col *collector.Collector, cfg analyzer.Config, symbols []string, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Config:      cfg,
		Symbols:     symbols,
		Notifier:    tn,
		Recorder:    rec,
		Ctx:         ctx,
		lastReports: make(map[string]*model.Report),
	}
}

// RegisterDaily registers the daily watchlist run.
func (s *Scheduler) RegisterDaily(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAllNow analyzes the whole watchlist immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunAllNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily watchlist analysis")
	for _, symbol := range s.Symbols {
		report, err := s.Analyze(symbol)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
			s.trySend(fmt.Sprintf("❌ analysis for %s failed: %v", symbol, err))
			continue
		}
		s.trySend(notifier.FormatReport(report))
	}
}

// Analyze runs one symbol through the full pipeline, records the report and
// remembers it for /last.
func (s *Scheduler) Analyze(symbol string) (*model.Report, error) {
	series, ratings, news, err := s.Collector.Collect(symbol)
	if err != nil {
		return nil, err
	}

	report := analyzer.Run(series, ratings, news, s.Config)

	if err := s.Recorder.RecordReport(report); err != nil {
		log.Printf("[ERROR] record report for %s: %v", symbol, err)
	}

	s.mu.Lock()
	s.lastReports[symbol] = report
	s.mu.Unlock()
	return report, nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(strings.TrimSpace(command))
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "usage: /analyze SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		report, err := s.Analyze(symbol)
		if err != nil {
			return fmt.Sprintf("analysis for %s failed: %v", symbol, err)
		}
		return notifier.FormatReport(report)
	case "/last":
		if len(fields) < 2 {
			return "usage: /last SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		s.mu.Lock()
		report := s.lastReports[symbol]
		s.mu.Unlock()
		if report == nil {
			return fmt.Sprintf("no report for %s yet, try /analyze %s", symbol, symbol)
		}
		return notifier.FormatReport(report)
	case "/watchlist":
		return "watching: " + strings.Join(s.Symbols, ", ")
	default:
		return "commands:\n• /analyze SYMBOL\n• /last SYMBOL\n• /watchlist"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
