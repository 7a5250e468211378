package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"SignalSentinel/internal/model"
	"SignalSentinel/internal/recorder"
	"SignalSentinel/internal/report"
)

func signalIcon(s model.Signal) string {
	switch s {
	case model.Buy:
		return "🟢"
	case model.Sell:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatSignalReport formats the latest-bar summary into a Telegram message.
func FormatSignalReport(s *report.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", html.EscapeString(s.Symbol), s.Date.Format(time.DateOnly)))
	b.WriteString(fmt.Sprintf("Close: %.2f\n", s.Close))
	b.WriteString(fmt.Sprintf("SMA(%d): %.2f | SMA(%d): %.2f\n", s.Params.Short, s.SMAShort, s.Params.Long, s.SMALong))
	b.WriteString(fmt.Sprintf("RSI(%d): %.2f\n\n", s.Params.RSIPeriod, s.RSI))
	b.WriteString(fmt.Sprintf("%s <b>Signal: %s</b>\n", signalIcon(s.Signal), s.Signal))
	return b.String()
}

// FormatHistory formats recorded evaluations, newest first.
func FormatHistory(symbol string, evals []recorder.Evaluation) string {
	if len(evals) == 0 {
		return fmt.Sprintf("No recorded evaluations for %s yet.", html.EscapeString(symbol))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗂 <b>%s history</b>\n\n", html.EscapeString(symbol)))
	for _, e := range evals {
		s := e.Summary
		b.WriteString(fmt.Sprintf("%s %s close=%.2f rsi=%.1f %s\n",
			s.Date.Format(time.DateOnly), signalIcon(s.Signal), s.Close, s.RSI, s.Signal))
	}
	return b.String()
}

// FormatError formats a failed evaluation.
func FormatError(symbol string, err error) string {
	return fmt.Sprintf("❌ <b>%s</b> evaluation failed: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
}

// HelpText lists the supported chat commands.
const HelpText = "Available commands:\n• /signal - evaluate now\n• /history - recent evaluations"
