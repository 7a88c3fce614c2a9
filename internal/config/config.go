package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configFileName = "pagesync"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the runtime configuration, read from the environment and an optional pagesync.yml.
type Config struct {
	Notion NotionConfig
	DB     DBConfig
	Cache  CacheConfig
	Sync   SyncConfig
	Log    LogConfig
}

// NotionConfig holds the remote API settings.
type NotionConfig struct {
	Token      string
	BaseURL    string
	Version    string
	DatabaseID string
	PageSize   int
	Timeout    time.Duration
}

// Validate checks the settings needed to call the remote API.
func (c *NotionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required.Error("NOTION_TOKEN is required")),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Version, validation.Required),
		validation.Field(&c.PageSize, validation.Min(1), validation.Max(100)),
	)
}

// DBConfig selects the relational store.
type DBConfig struct {
	Driver string
	DSN    string
}

func (c *DBConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&c.DSN, validation.Required),
	)
}

// CacheConfig configures the rendered content cache. An empty Addr disables it.
type CacheConfig struct {
	Addr        string
	Password    string
	DB          int
	TTL         time.Duration
	Compression string
}

func (c *CacheConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DB, validation.Min(0)),
		validation.Field(&c.Compression, validation.In("none", "gzip", "brotli", "lz4")),
	)
}

// SyncConfig maps page properties onto blog rows.
type SyncConfig struct {
	Schedule           string
	AuthorID           uint
	SlugProperty       string
	UpdateSlugProperty string
	TagProperty        string
	CategoryProperty   string
}

func (c *SyncConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Schedule, validation.Required),
		validation.Field(&c.AuthorID, validation.Required),
		validation.Field(&c.SlugProperty, validation.Required),
		validation.Field(&c.UpdateSlugProperty, validation.Required),
		validation.Field(&c.TagProperty, validation.Required),
		validation.Field(&c.CategoryProperty, validation.Required),
	)
}

type LogConfig struct {
	Level string
}

func (c *LogConfig) Validate() error {
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Validate checks every section except Notion, which only commands talking to the API need.
func (c *Config) Validate() error {
	if err := c.DB.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Sync.Validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return c.Log.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("NOTION_BASE_URL", "https://api.notion.com/v1/")
	v.SetDefault("NOTION_VERSION", "2022-06-28")
	v.SetDefault("NOTION_PAGE_SIZE", 100)
	v.SetDefault("NOTION_TIMEOUT", "30s")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "pagesync.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "1h")
	v.SetDefault("CACHE_COMPRESSION", "gzip")
	v.SetDefault("SYNC_SCHEDULE", "@every 15m")
	v.SetDefault("SYNC_AUTHOR_ID", 1)
	v.SetDefault("SYNC_SLUG_PROPERTY", "Slug")
	v.SetDefault("SYNC_UPDATE_SLUG_PROPERTY", "slug")
	v.SetDefault("SYNC_TAG_PROPERTY", "Tag")
	v.SetDefault("SYNC_CATEGORY_PROPERTY", "Category")
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig reads the configuration. Environment variables override pagesync.yml, which is looked
// up in the working directory and in ~/.config/pagesync.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configFileName)
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configFileName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Notion: NotionConfig{
			Token:      v.GetString("NOTION_TOKEN"),
			BaseURL:    v.GetString("NOTION_BASE_URL"),
			Version:    v.GetString("NOTION_VERSION"),
			DatabaseID: v.GetString("NOTION_DATABASE_ID"),
			PageSize:   v.GetInt("NOTION_PAGE_SIZE"),
			Timeout:    v.GetDuration("NOTION_TIMEOUT"),
		},
		DB: DBConfig{
			Driver: v.GetString("DB_DRIVER"),
			DSN:    v.GetString("DB_DSN"),
		},
		Cache: CacheConfig{
			Addr:        v.GetString("REDIS_ADDR"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			TTL:         v.GetDuration("CACHE_TTL"),
			Compression: v.GetString("CACHE_COMPRESSION"),
		},
		Sync: SyncConfig{
			Schedule:           v.GetString("SYNC_SCHEDULE"),
			AuthorID:           v.GetUint("SYNC_AUTHOR_ID"),
			SlugProperty:       v.GetString("SYNC_SLUG_PROPERTY"),
			UpdateSlugProperty: v.GetString("SYNC_UPDATE_SLUG_PROPERTY"),
			TagProperty:        v.GetString("SYNC_TAG_PROPERTY"),
			CategoryProperty:   v.GetString("SYNC_CATEGORY_PROPERTY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetupLogger applies the configured log level to the package-level logger.
func SetupLogger(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
