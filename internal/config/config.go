// Package config handles runtime settings: development defaults, overlaid by
// environment variables, overlaid by command-line flags.
package config

import (
	"flag"
	"os"
)

type Config struct {
	Addr           string // HTTP listen address
	DatabaseDriver string // "sqlite3" or "postgres"
	DatabaseDSN    string
	SecretKey      string // HMAC secret for session cookies and recovery tokens
	SMTPHost       string // empty host makes the mail sender log instead of send
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	MailFrom       string
	BaseURL        string // public base URL used in recovery links
}

// LoadDefaults populates Config with development defaults. The secret key is
// insecure by design and must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDriver = "sqlite3"
	c.DatabaseDSN = "quotevault.db"
	c.SecretKey = "DEBUGSECRETKEY"
	c.SMTPPort = "587"
	c.MailFrom = "noreply@quotevault.local"
	c.BaseURL = "http://localhost:8080"
}

func (c *Config) loadEnv() {
	setFromEnv(&c.Addr, "ADDR")
	setFromEnv(&c.DatabaseDriver, "DB_DRIVER")
	setFromEnv(&c.DatabaseDSN, "DB_DSN")
	setFromEnv(&c.SecretKey, "SECRET_KEY")
	setFromEnv(&c.SMTPHost, "SMTP_HOST")
	setFromEnv(&c.SMTPPort, "SMTP_PORT")
	setFromEnv(&c.SMTPUser, "SMTP_USER")
	setFromEnv(&c.SMTPPassword, "SMTP_PASSWORD")
	setFromEnv(&c.MailFrom, "MAIL_FROM")
	setFromEnv(&c.BaseURL, "BASE_URL")
}

func setFromEnv(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = v
	}
}

func (c *Config) parseFlags() {
	flag.StringVar(&c.Addr, "addr", c.Addr, "http service address")
	flag.StringVar(&c.DatabaseDriver, "db-driver", c.DatabaseDriver, "database driver (sqlite3 or postgres)")
	flag.StringVar(&c.DatabaseDSN, "db-dsn", c.DatabaseDSN, "database data source name")
	flag.Parse()
}

// Load builds a Config by applying defaults, then environment variables, then
// command-line flags.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.loadEnv()
	cfg.parseFlags()
	return cfg
}
