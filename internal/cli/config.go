package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mcoot/wordhunt/internal/factory"
	redisstorage "github.com/mcoot/wordhunt/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	DictionaryPath string
	ScoreLogPath   string
	ScoreBackend   string
	StorageType    string
	RedisURL       string
	TimeLimit      time.Duration
	HintStrategy   string
	Output         string
	Verbose        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		DictionaryPath: getEnvOrDefault("WORDHUNT_DICTIONARY", "words_alpha.txt"),
		ScoreLogPath:   getEnvOrDefault("WORDHUNT_SCORE_LOG", "scores.csv"),
		ScoreBackend:   getEnvOrDefault("WORDHUNT_SCORE_BACKEND", factory.ScoreLogCSV),
		StorageType:    getEnvOrDefault("STORAGE_TYPE", factory.StorageTypeMemory),
		RedisURL:       os.Getenv("REDIS_URL"),
		TimeLimit:      getEnvDuration("WORDHUNT_TIME_LIMIT", 90*time.Second),
		HintStrategy:   getEnvOrDefault("WORDHUNT_HINT_STRATEGY", "trie"),
		Output:         "text",
		Verbose:        false,
	}
}

// Logger builds the CLI logger. Only warnings reach the terminal unless
// verbose output was asked for.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig translates the CLI settings into application wiring
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	fc := factory.Config{
		DictionaryPath: c.DictionaryPath,
		Logger:         logger,
		StorageType:    c.StorageType,
		ScoreLogType:   c.ScoreBackend,
		ScoreLogPath:   c.ScoreLogPath,
		TimeLimit:      c.TimeLimit,
		HintStrategy:   c.HintStrategy,
	}

	if c.StorageType == factory.StorageTypeRedis {
		if c.RedisURL == "" {
			return factory.Config{}, fmt.Errorf("REDIS_URL required when storage type is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvDuration accepts "90s" style durations or a bare number of seconds
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if d, err := time.ParseDuration(val + "s"); err == nil {
		return d
	}
	return defaultVal
}
