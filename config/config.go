package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Cron       CronConfig       `yaml:"cron"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Translator TranslatorConfig `yaml:"translator"`
	Sources    []Source         `yaml:"sources"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type CronConfig struct {
	RefreshInterval string `yaml:"refresh_interval"`
}

// PipelineConfig holds the tunables of the ingestion pipeline. Durations are
// written in time.ParseDuration syntax ("8s", "24h"); invalid or missing
// values fall back to the defaults in the accessor methods.
type PipelineConfig struct {
	FetchTimeout    string `yaml:"fetch_timeout"`    // per-feed fetch
	EnrichTimeout   string `yaml:"enrich_timeout"`   // per-article page fetch
	FreshnessWindow string `yaml:"freshness_window"` // recency cutoff
	FallbackCount   int    `yaml:"fallback_count"`   // entries kept when the window comes up empty
	LoadLimit       int    `yaml:"load_limit"`       // rows read on startup
	SummaryMax      int    `yaml:"summary_max"`      // stored summary cap, in runes
}

// TranslatorConfig points at an OpenAI-compatible chat endpoint used to
// translate titles. An empty ApiKey disables translation entirely.
type TranslatorConfig struct {
	ApiURL   string `yaml:"api_url"`
	ApiKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// Source is one feed endpoint of the registry.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
	Enabled  bool   `yaml:"enabled"`
}

func (p PipelineConfig) FetchTimeoutDuration() time.Duration {
	return parseDuration(p.FetchTimeout, 8*time.Second)
}

func (p PipelineConfig) EnrichTimeoutDuration() time.Duration {
	return parseDuration(p.EnrichTimeout, 5*time.Second)
}

func (p PipelineConfig) FreshnessWindowDuration() time.Duration {
	return parseDuration(p.FreshnessWindow, 24*time.Hour)
}

func (p PipelineConfig) GetFallbackCount() int {
	if p.FallbackCount <= 0 {
		return 10
	}
	return p.FallbackCount
}

func (p PipelineConfig) GetLoadLimit() int {
	if p.LoadLimit <= 0 {
		return 20
	}
	return p.LoadLimit
}

func (p PipelineConfig) GetSummaryMax() int {
	if p.SummaryMax <= 0 {
		return 500
	}
	return p.SummaryMax
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// Load reads the YAML config file if present, otherwise keeps defaults.
// Environment variables override both.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: "3000",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Path: "data/news.db",
		},
		Cron: CronConfig{
			RefreshInterval: "*/30 * * * *",
		},
		Translator: TranslatorConfig{
			ApiURL:   "https://api.openai.com/v1",
			Model:    "gpt-4o-mini",
			Language: "Italian",
		},
		Sources: DefaultSources(),
	}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Config file not found: %s, using defaults", configPath)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	if apiURL := os.Getenv("TRANSLATOR_API_URL"); apiURL != "" {
		cfg.Translator.ApiURL = apiURL
	}

	if apiKey := os.Getenv("TRANSLATOR_API_KEY"); apiKey != "" {
		cfg.Translator.ApiKey = apiKey
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = DefaultSources()
	}

	return cfg, nil
}

// DefaultSources is the built-in feed registry. Editing the config file is
// enough to add or remove a source; no code change is required.
func DefaultSources() []Source {
	return []Source{
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: "AI", Enabled: true},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: "Tech", Enabled: true},
		{Name: "Wired", URL: "https://www.wired.com/feed/rss", Category: "Tech", Enabled: true},
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: "Tech", Enabled: true},
		{Name: "VentureBeat", URL: "https://venturebeat.com/feed/", Category: "AI", Enabled: true},
	}
}

// EnabledSources filters the registry down to active feeds.
func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// GetServerAddress returns the listen address, prefixing bare ports with ":".
func (c *Config) GetServerAddress() string {
	if _, err := strconv.Atoi(c.Server.Port); err == nil {
		return ":" + c.Server.Port
	}
	return c.Server.Port
}
