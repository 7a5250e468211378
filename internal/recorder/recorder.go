package recorder

import (
	"time"

	"SignalSentinel/internal/report"
)

// Evaluation is one recorded signal evaluation.
type Evaluation struct {
	RecordedAt time.Time
	Summary    *report.Summary
}

// Recorder persists evaluation history for later review.
type Recorder interface {
	RecordEvaluation(evt *Evaluation) error
	History(symbol string, limit int) ([]Evaluation, error)
	Close() error
}
