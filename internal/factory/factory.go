package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/game"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/services/stats"
	"github.com/mcoot/wordhunt/internal/storage"
	"github.com/mcoot/wordhunt/internal/storage/csvlog"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	redisstorage "github.com/mcoot/wordhunt/internal/storage/redis"
	"github.com/mcoot/wordhunt/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Score log type constants
const (
	ScoreLogCSV     = "csv"
	ScoreLogSQLite  = "sqlite"
	ScoreLogStorage = "storage"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	ScoreLog storage.ScoreLog

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      board.ServiceInterface
	ScoringService    *scoring.Service
	HintsService      *hints.Service
	StatsService      *stats.Service
	GameController    *game.Controller

	dictionaryPath string
	closers        []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list file (optional)
	// If empty, LoadDictionary reads the list from storage
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ScoreLogType selects where finished rounds are recorded ("csv", "sqlite"
	// or "storage"). If empty, defaults to "storage".
	ScoreLogType string
	// ScoreLogPath is the file for the csv and sqlite score logs
	ScoreLogPath string
	// TimeLimit is the round length (optional, defaults to 90s)
	TimeLimit time.Duration
	// HintStrategy selects the possible-words finder ("scan" or "trie")
	HintStrategy string
	// MaxBoardRestarts bounds board regeneration. Zero means unbounded.
	MaxBoardRestarts uint
}

// settings is the part of Config the services consume
type settings struct {
	timeLimit    time.Duration
	hintStrategy hints.Strategy
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	strategy, err := hints.ParseStrategy(cfg.HintStrategy)
	if err != nil {
		return nil, err
	}

	var closers []io.Closer

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create score log based on type
	var scoreLog storage.ScoreLog
	switch cfg.ScoreLogType {
	case "", ScoreLogStorage:
		scoreLog = store
	case ScoreLogCSV:
		if cfg.ScoreLogPath == "" {
			_ = closeAll(closers)
			return nil, errors.New("ScoreLogPath required when ScoreLogType is csv")
		}
		scoreLog = csvlog.New(cfg.ScoreLogPath)
	case ScoreLogSQLite:
		if cfg.ScoreLogPath == "" {
			_ = closeAll(closers)
			return nil, errors.New("ScoreLogPath required when ScoreLogType is sqlite")
		}
		sqliteLog, err := sqlite.Open(cfg.ScoreLogPath)
		if err != nil {
			_ = closeAll(closers)
			return nil, err
		}
		scoreLog = sqliteLog
		closers = append(closers, sqliteLog)
	default:
		_ = closeAll(closers)
		return nil, errors.New("invalid ScoreLogType: must be 'csv', 'sqlite' or 'storage'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	boardCfg := board.DefaultConfig()
	boardCfg.MaxRestarts = cfg.MaxBoardRestarts
	boardService := board.New(rnd, boardCfg, logger)

	app := newWithDependencies(store, scoreLog, boardService, clk, rnd, settings{
		timeLimit:    cfg.TimeLimit,
		hintStrategy: strategy,
	}, logger)
	app.dictionaryPath = cfg.DictionaryPath
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	scoreLog storage.ScoreLog,
	boardService board.ServiceInterface,
	clk clock.Clock,
	rnd random.Random,
	s settings,
	logger *slog.Logger,
) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	scoringService := scoring.New(scoring.DefaultHintLimit)
	hintsService := hints.New(dictService, scoringService, s.hintStrategy, logger)
	statsService := stats.New(scoreLog, logger)
	gameController := game.NewController(
		store,
		boardService,
		dictService,
		scoringService,
		hintsService,
		statsService,
		clk,
		rnd,
		game.Config{TimeLimit: s.timeLimit},
		logger,
	)

	return &App{
		Storage:           store,
		ScoreLog:          scoreLog,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		HintsService:      hintsService,
		StatsService:      statsService,
		GameController:    gameController,
	}
}

// LoadDictionary reads the configured word list file, or the copy kept in
// storage when no file is configured
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.dictionaryPath == "" {
		return a.DictionaryService.LoadFromStorage(ctx)
	}
	if err := a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath); err != nil {
		return err
	}
	if a.DictionaryService.WordCount() == 0 {
		return fmt.Errorf("%w: %s", model.ErrDictionaryEmpty, a.dictionaryPath)
	}
	return nil
}

// Close releases storage connections
func (a *App) Close() error {
	return closeAll(a.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
