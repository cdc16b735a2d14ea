package config

import (
	"errors"

	"candidatescout/internal/notify"
	"candidatescout/internal/scrapers/linkedin"
	"candidatescout/lib/configutil"
	"candidatescout/pkg/migrations"
)

type Search struct {
	Keywords      []string `json:"keywords"`
	MinExperience int      `json:"min_experience"`
	Location      string   `json:"location"`
	Count         int      `json:"count"`
}

type Notify struct {
	Smtp       notify.SmtpConfig `json:"smtp"`
	Recipients []string          `json:"recipients"`
}

type Config struct {
	Email             string              `json:"email"`
	Password          string              `json:"password"`
	BaseUrl           string              `json:"base_url"`
	UserAgent         string              `json:"user_agent"`
	Proxies           []string            `json:"proxies"`
	CloudflareBypass  bool                `json:"cloudflare_bypass"`
	RequestsPerSecond float64             `json:"requests_per_second"`
	MaxLoginAttempts  int                 `json:"max_login_attempts"`
	Database          migrations.Database `json:"database"`
	ExportPath        string              `json:"export_path"`
	LogFile           string              `json:"log_file"`
	Port              int                 `json:"port"`
	Notify            Notify              `json:"notify"`
	Search            Search              `json:"search"`
}

func Defaults() Config {
	return Config{
		BaseUrl:          linkedin.DefaultBaseUrl,
		MaxLoginAttempts: linkedin.DefaultMaxLoginAttempts,
		Database:         migrations.Database{File: "linkedin.db"},
		ExportPath:       "candidatos_encontrados.csv",
		LogFile:          "busca_linkedin.log",
		Port:             5000,
		Search: Search{
			MinExperience: 2,
			Count:         100,
		},
	}
}

func (c *Config) applyDefaults() {
	defaults := Defaults()
	if c.BaseUrl == "" {
		c.BaseUrl = defaults.BaseUrl
	}
	if c.MaxLoginAttempts <= 0 {
		c.MaxLoginAttempts = defaults.MaxLoginAttempts
	}
	if c.Database.File == "" && c.Database.Url == "" {
		c.Database = defaults.Database
	}
	if c.ExportPath == "" {
		c.ExportPath = defaults.ExportPath
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}
	if c.Port == 0 {
		c.Port = defaults.Port
	}
	if c.Search.Count <= 0 {
		c.Search.Count = defaults.Search.Count
	}
}

// Load reads the config file (and its .local override) if it exists, then
// the .env files, then lets LINKEDIN_EMAIL and LINKEDIN_PASSWORD override
// the credentials. A missing config file is not an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, configutil.ErrNotFound) {
		cfg = Defaults()
	} else if err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	err = configutil.LoadDotenv(envFiles...)
	if err != nil {
		return Config{}, err
	}
	configutil.OverrideFromEnv(&cfg.Email, "LINKEDIN_EMAIL")
	configutil.OverrideFromEnv(&cfg.Password, "LINKEDIN_PASSWORD")
	return cfg, nil
}
