package csvlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

// Header is the first row of every score file
var Header = []string{"score", "words_found", "time"}

// ScoreLog appends score records to a CSV file
type ScoreLog struct {
	path string
	mu   sync.Mutex
}

var _ storage.ScoreLog = (*ScoreLog)(nil)

// New creates a ScoreLog backed by the file at path. The file is created on
// the first append.
func New(path string) *ScoreLog {
	return &ScoreLog{path: path}
}

// Path returns the backing file
func (l *ScoreLog) Path() string {
	return l.path
}

// AppendScore writes one row, preceded by the header if the file is new
func (l *ScoreLog) AppendScore(ctx context.Context, record model.ScoreRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if isNew {
		_ = w.Write(Header)
	}
	_ = w.Write([]string{
		strconv.Itoa(record.Score),
		strconv.Itoa(record.WordsFound),
		strconv.FormatInt(record.Time, 10),
	})
	w.Flush()

	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ListScores reads every row. A missing file is an empty log.
func (l *ScoreLog) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", model.ErrMalformedScoreLog, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range Header {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", model.ErrMalformedScoreLog, name)
		}
	}

	var records []model.ScoreRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrMalformedScoreLog, err)
		}

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", model.ErrMalformedScoreLog, line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string, columns map[string]int) (model.ScoreRecord, error) {
	var record model.ScoreRecord
	var err error

	if record.Score, err = strconv.Atoi(row[columns["score"]]); err != nil {
		return record, err
	}
	if record.WordsFound, err = strconv.Atoi(row[columns["words_found"]]); err != nil {
		return record, err
	}
	if record.Time, err = strconv.ParseInt(row[columns["time"]], 10, 64); err != nil {
		return record, err
	}
	return record, nil
}
