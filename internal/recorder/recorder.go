package recorder

import "StockPulse/internal/model"

// Recorder persists produced reports for later inspection.
type Recorder interface {
	RecordReport(r *model.Report) error
	Close() error
}

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReport(_ *model.Report) error { return nil }
func (n *NoopRecorder) Close() error                       { return nil }
