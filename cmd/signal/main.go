// Command signal prints the latest moving-average/RSI trading signal for one symbol.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/config"
	"SignalSentinel/internal/export"
	"SignalSentinel/internal/pipeline"
	"SignalSentinel/internal/report"

	"github.com/joho/godotenv"
)

type options struct {
	configPath string
	envFile    string
	period     string
	provider   string
	csvPath    string
	short      int
	long       int
	rsiPeriod  int
	format     string
	exportPath string
	timeout    time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*options, string, error) {
	fs := flag.NewFlagSet("signal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Moving average and RSI trading helper")
		fmt.Fprintln(stderr, "\nUsage: signal [flags] SYMBOL")
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.configPath, "config", "configs/config.yaml", "Config file path")
	fs.StringVar(&o.envFile, "env", ".env", "Environment file path")
	fs.StringVar(&o.period, "period", "", "History period to download (default 1y)")
	fs.StringVar(&o.provider, "provider", "", "Data provider: yahoo, rest or csv")
	fs.StringVar(&o.csvPath, "csv", "", "Read bars from this CSV file (implies -provider csv)")
	fs.IntVar(&o.short, "short", 0, "Short SMA window (default 20)")
	fs.IntVar(&o.long, "long", 0, "Long SMA window (default 50)")
	fs.IntVar(&o.rsiPeriod, "rsi", 0, "RSI period (default 14)")
	fs.StringVar(&o.format, "format", "line", "Output format: line or table")
	fs.StringVar(&o.exportPath, "export", "", "Also write every bar to this .csv/.json/.parquet/.xlsx file")
	fs.DurationVar(&o.timeout, "timeout", 60*time.Second, "Timeout for downloading data")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", errors.New("exactly one SYMBOL is required")
	}
	if o.format != "line" && o.format != "table" {
		return nil, "", fmt.Errorf("unknown -format %q", o.format)
	}
	return o, fs.Arg(0), nil
}

// apply layers command-line flags over the loaded config.
func (o *options) apply(cfg *config.Config, symbol string) {
	cfg.Symbol = symbol
	if o.period != "" {
		cfg.Period = o.period
	}
	if o.csvPath != "" {
		cfg.DataSource.Provider = "csv"
		cfg.DataSource.CSVPath = o.csvPath
	}
	if o.provider != "" {
		cfg.DataSource.Provider = o.provider
	}
	if o.short != 0 {
		cfg.Indicators.Short = o.short
	}
	if o.long != 0 {
		cfg.Indicators.Long = o.long
	}
	if o.rsiPeriod != 0 {
		cfg.Indicators.RSIPeriod = o.rsiPeriod
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, symbol, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if err := godotenv.Load(o.envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load env file %s: %v", o.envFile, err)
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.apply(cfg, symbol)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	fetcher, closeFetcher, err := pipeline.NewFetcher(cfg)
	if err != nil {
		return err
	}
	defer closeFetcher()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	res, err := pipeline.New(collector.NewCollector(fetcher, cfg.Symbol, cfg.Period), cfg.Indicators).Run(ctx)
	if err != nil {
		return err
	}

	if o.exportPath != "" {
		if err := export.Write(res.Indicated, o.exportPath); err != nil {
			return err
		}
		log.Printf("[INFO] wrote %d bars to %s", res.Indicated.Len(), o.exportPath)
	}

	switch o.format {
	case "table":
		fmt.Fprintln(stdout, report.Table(res.Summary))
	default:
		fmt.Fprintln(stdout, res.Summary.Line())
	}
	return nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("[FATAL] %v", err)
	}
}
