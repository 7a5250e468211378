package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbol     string       `yaml:"symbol"`
	Period     string       `yaml:"period"`
	Indicators model.Params `yaml:"indicators"`
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo, rest or csv
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		CSVPath  string `yaml:"csv_path"`
	} `yaml:"data_source"`
	Cache struct {
		RedisAddr     string        `yaml:"redis_addr"`
		RedisPassword string        `yaml:"redis_password"`
		RedisDB       int           `yaml:"redis_db"`
		TTL           time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides
// and defaults. A missing file is not an error.
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

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := []struct {
		key string
		dst *string
	}{
		{"SYMBOL", &c.Symbol},
		{"PERIOD", &c.Period},
		{"DATA_PROVIDER", &c.DataSource.Provider},
		{"REST_BASE_URL", &c.DataSource.BaseURL},
		{"REST_API_KEY", &c.DataSource.APIKey},
		{"CSV_PATH", &c.DataSource.CSVPath},
		{"REDIS_ADDR", &c.Cache.RedisAddr},
		{"TELEGRAM_BOT_TOKEN", &c.Telegram.BotToken},
		{"TELEGRAM_CHAT_ID", &c.Telegram.ChatID},
		{"CRON_DAILY", &c.Schedule.DailyCron},
		{"SQLITE_PATH", &c.Database.SQLitePath},
		{"METRICS_ADDR", &c.Metrics.Addr},
		{"HTTPS_PROXY", &c.Proxy},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SMA_SHORT", &c.Indicators.Short},
		{"SMA_LONG", &c.Indicators.Long},
		{"RSI_PERIOD", &c.Indicators.RSIPeriod},
	}
	for _, n := range ints {
		v := os.Getenv(n.key)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", n.key, err)
		}
		*n.dst = i
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := model.DefaultParams()
	if c.Indicators.Short == 0 {
		c.Indicators.Short = defaults.Short
	}
	if c.Indicators.Long == 0 {
		c.Indicators.Long = defaults.Long
	}
	if c.Indicators.RSIPeriod == 0 {
		c.Indicators.RSIPeriod = defaults.RSIPeriod
	}
	if c.Symbol == "" {
		c.Symbol = "SPX500"
	}
	if c.Period == "" {
		c.Period = collector.DefaultPeriod
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
		if c.DataSource.BaseURL != "" {
			c.DataSource.Provider = "rest"
		}
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 15 * time.Minute
	}
	if c.Schedule.DailyCron == "" {
		c.Schedule.DailyCron = "0 30 22 * * 1-5"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/signal_sentinel.db"
	}
}

// Validate checks the fields needed to compute a signal.
func (c *Config) Validate() error {
	p := c.Indicators
	if p.Short <= 0 || p.Long <= 0 || p.RSIPeriod <= 0 {
		return fmt.Errorf("indicators: windows must be positive (short=%d long=%d rsi_period=%d)",
			p.Short, p.Long, p.RSIPeriod)
	}
	if !collector.ValidPeriod(c.Period) {
		return fmt.Errorf("period %q is not one of %v", c.Period, collector.Periods)
	}
	switch c.DataSource.Provider {
	case "yahoo":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	case "csv":
		if c.DataSource.CSVPath == "" {
			return fmt.Errorf("data_source.csv_path is required for the csv provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not one of yahoo, rest, csv", c.DataSource.Provider)
	}
	return nil
}

// ValidateBot additionally checks what the long-running bot needs.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}
