package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"supportbot/internal/adapters/out/classifier"
	"supportbot/internal/jobs"

	"go.uber.org/zap/zapcore"
)

// Defaults for keys that may be left unset.
const (
	DefaultHTTPPort          = "3002"
	DefaultDBPort            = "5432"
	DefaultDBSslMode         = "disable"
	DefaultClassifierTimeout = "3s"
	DefaultLogLevel          = "info"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ClassifierURL     string
	ClassifierTimeout string
	ProbeSchedule     string
	LogLevel          string
}

// WithDefaults fills every empty optional key with its default.
func (c Config) WithDefaults() Config {
	setDefault(&c.HTTPPort, DefaultHTTPPort)
	setDefault(&c.DBPort, DefaultDBPort)
	setDefault(&c.DBSslMode, DefaultDBSslMode)
	setDefault(&c.ClassifierURL, classifier.DefaultURL)
	setDefault(&c.ClassifierTimeout, DefaultClassifierTimeout)
	setDefault(&c.ProbeSchedule, jobs.DefaultProbeSchedule)
	setDefault(&c.LogLevel, DefaultLogLevel)
	return c
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error

	if c.DBHost == "" {
		problems = append(problems, errors.New("DB_HOST is required"))
	}
	if c.DBName == "" {
		problems = append(problems, errors.New("DB_NAME is required"))
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT %q is not a valid port", c.HTTPPort))
	}
	if u, err := url.Parse(c.ClassifierURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Errorf("CLASSIFIER_URL %q is not an absolute URL", c.ClassifierURL))
	}
	if d, err := c.ClassifierTimeoutDuration(); err != nil || d <= 0 {
		problems = append(problems, fmt.Errorf("CLASSIFIER_TIMEOUT %q is not a positive duration", c.ClassifierTimeout))
	}
	if _, err := c.ZapLevel(); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(problems...)
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) ClassifierTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.ClassifierTimeout)
}

func (c Config) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

func (c Config) ListenAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

func setDefault(value *string, def string) {
	if *value == "" {
		*value = def
	}
}
