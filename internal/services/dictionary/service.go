package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	list   []string // distinct words in load order
	trie   *Trie
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
		trie:    NewTrie(),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", model.ErrDictionaryNotFound, path)
		}
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.loadWords(words); err != nil {
		return err
	}

	// Save the normalised list so LoadFromStorage can skip the file next time
	if err := s.storage.SaveDictionaryWords(ctx, s.Words()); err != nil {
		return err
	}
	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("word_count", s.WordCount()),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	s.list = make([]string, 0, len(words))
	s.trie = NewTrie()
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		lower := strings.ToLower(word)
		if _, ok := s.words[lower]; ok {
			continue
		}
		s.words[lower] = struct{}{}
		s.list = append(s.list, lower)
		s.trie.Insert(lower)
	}
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary
func (s *Service) IsValidWord(word string) bool {
	if word == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns a copy of every distinct word, in load order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.list))
	copy(result, s.list)
	return result
}

// Trie returns the prefix tree built at load time. It is replaced, never
// mutated, on reload.
func (s *Service) Trie() *Trie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	Words() []string
	Trie() *Trie
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
