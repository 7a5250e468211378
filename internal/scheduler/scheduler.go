package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"SignalSentinel/internal/metrics"
	"SignalSentinel/internal/notifier"
	"SignalSentinel/internal/pipeline"
	"SignalSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

const historyLimit = 10

// Sender delivers a report to the chat.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the evaluation on a cron schedule and answers chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
	Notifier Sender
	Recorder recorder.Recorder
	Metrics  *metrics.Metrics
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *pipeline.Pipeline, n Sender, rec recorder.Recorder, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Notifier: n,
		Recorder: rec,
		Metrics:  m,
		Ctx:      ctx,
	}
}

// Register registers the daily evaluation task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily evaluation")
	s.trySend(s.evaluate(s.Ctx))
}

// evaluate runs the pipeline, records the result and returns the chat report.
func (s *Scheduler) evaluate(ctx context.Context) string {
	symbol := s.Pipeline.Collector.Symbol
	start := time.Now()

	res, err := s.Pipeline.Run(ctx)
	if err != nil {
		log.Printf("[ERROR] evaluate %s: %v", symbol, err)
		s.Metrics.ObserveError("pipeline")
		return notifier.FormatError(symbol, err)
	}
	s.Metrics.ObserveSummary(res.Summary, time.Since(start))
	log.Printf("[INFO] %s", res.Summary.Line())

	if err := s.Recorder.RecordEvaluation(&recorder.Evaluation{
		RecordedAt: time.Now(),
		Summary:    res.Summary,
	}); err != nil {
		log.Printf("[ERROR] record evaluation: %v", err)
		s.Metrics.ObserveError("record")
	}
	return notifier.FormatSignalReport(res.Summary)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	switch commandName(command) {
	case "/signal":
		return s.evaluate(ctx)
	case "/history":
		symbol := s.Pipeline.Collector.Symbol
		evals, err := s.Recorder.History(symbol, historyLimit)
		if err != nil {
			log.Printf("[ERROR] load history: %v", err)
			return notifier.FormatError(symbol, err)
		}
		return notifier.FormatHistory(symbol, evals)
	default:
		return notifier.HelpText
	}
}

// commandName strips arguments and a "@botname" suffix from a chat command.
func commandName(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(name)
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
