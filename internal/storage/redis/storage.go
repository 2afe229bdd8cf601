package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roundKey(round.ID), data, s.cfg.RoundTTL).Err()
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	data, err := s.client.Get(ctx, roundKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoundNotFound
		}
		return nil, err
	}

	var round model.Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	return s.client.Del(ctx, roundKey(id)).Err()
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.LRange(ctx, key, 0, -1).Result()
}

// SaveDictionaryWords replaces the stored word list. A list keeps load order,
// which a set would lose.
func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	const batchSize = 10000
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))
		members := make([]interface{}, 0, end-start)
		for _, w := range words[start:end] {
			members = append(members, w)
		}
		pipe.RPush(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, record model.ScoreRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, scoresKey(), data).Err()
}

func (s *Storage) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	items, err := s.client.LRange(ctx, scoresKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]model.ScoreRecord, 0, len(items))
	for i, item := range items {
		var record model.ScoreRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", model.ErrMalformedScoreLog, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
