package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/georgemunganga/storefront/internal/modules/analytics"
)

const envPrefix = "storefront"

// Config holds everything the client needs to reach the database and run a session.
// The three connection coordinates come from the command line, the rest from
// STOREFRONT_* environment variables.
type Config struct {
	DBName string `ignored:"true"`
	DBPort string `ignored:"true"`
	DBUser string `ignored:"true"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	SearchRadius    float64           `envconfig:"SEARCH_RADIUS" default:"30"`
	RecentLimit     int               `envconfig:"RECENT_LIMIT" default:"5"`
	CustomerRanking analytics.Ranking `envconfig:"CUSTOMER_RANKING" default:"ascending"`

	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"8h"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the environment and attaches the positional connection arguments.
func Load(dbName, dbPort, dbUser string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	cfg.DBName = dbName
	cfg.DBPort = dbPort
	cfg.DBUser = dbUser

	if cfg.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = secret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SearchRadius < 0 {
		return errors.Errorf("search radius must not be negative, got %v", c.SearchRadius)
	}
	if c.RecentLimit <= 0 {
		return errors.Errorf("recent limit must be positive, got %d", c.RecentLimit)
	}
	ranking, err := analytics.ParseRanking(string(c.CustomerRanking))
	if err != nil {
		return errors.Wrap(err, "customer ranking")
	}
	c.CustomerRanking = ranking
	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}

// DSN is the lib/pq connection URL.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate session secret")
	}
	return hex.EncodeToString(b), nil
}
