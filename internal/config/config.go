package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Autosave  AutosaveConfig  `mapstructure:"autosave"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	GinMode string `mapstructure:"gin_mode"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
// Expiration is a duration string in the file ("60m", "1h").
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
	JSON   bool   `mapstructure:"json"`
}

// RedisConfig is optional; rate limiting is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RateLimitConfig struct {
	AuthPerMinute int `mapstructure:"auth_per_minute"`
}

// ScheduleConfig drives the calendar logic.
type ScheduleConfig struct {
	// CompletionLookbackDays bounds how far back completion rows are loaded.
	CompletionLookbackDays int `mapstructure:"completion_lookback_days"`
	// CycleWeeks wraps multi-week programs back to week 1 after the last
	// week. When false the final week repeats.
	CycleWeeks bool `mapstructure:"cycle_weeks"`
	// TimeZone decides "today" for clients without their own time zone.
	TimeZone    string        `mapstructure:"timezone"`
	CacheSizeMB int           `mapstructure:"cache_size_mb"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

type AutosaveConfig struct {
	Delay       time.Duration `mapstructure:"delay"`
	SaveTimeout time.Duration `mapstructure:"save_timeout"`
}

// Location resolves the configured schedule time zone.
func (c ScheduleConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, schedule.cycle_weeks -> SCHEDULE_CYCLE_WEEKS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_coach")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)
	v.SetDefault("ratelimit.auth_per_minute", 20)
	v.SetDefault("schedule.completion_lookback_days", 60)
	v.SetDefault("schedule.cycle_weeks", true)
	v.SetDefault("schedule.timezone", "UTC")
	v.SetDefault("schedule.cache_size_mb", 32)
	v.SetDefault("schedule.cache_ttl", "30s")
	v.SetDefault("autosave.delay", "1500ms")
	v.SetDefault("autosave.save_timeout", "10s")

	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
}

func (c Config) validate() error {
	if c.Schedule.CompletionLookbackDays <= 0 {
		return fmt.Errorf("schedule.completion_lookback_days must be positive, got %d", c.Schedule.CompletionLookbackDays)
	}
	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}
	if c.Autosave.Delay < 0 {
		return fmt.Errorf("autosave.delay must not be negative, got %s", c.Autosave.Delay)
	}
	return nil
}
