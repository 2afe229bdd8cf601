package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	score       INTEGER NOT NULL,
	words_found INTEGER NOT NULL,
	time        INTEGER NOT NULL
);`

// ScoreLog keeps the score log in a SQLite table
type ScoreLog struct {
	db *sql.DB
}

var _ storage.ScoreLog = (*ScoreLog)(nil)

// Open opens (and creates if missing) the database at path and ensures the
// scores table exists
func Open(path string) (*ScoreLog, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// One writer at a time keeps appends ordered by id
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &ScoreLog{db: db}, nil
}

// Close closes the database
func (l *ScoreLog) Close() error {
	return l.db.Close()
}

func (l *ScoreLog) AppendScore(ctx context.Context, record model.ScoreRecord) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO scores (score, words_found, time) VALUES (?, ?, ?)`,
		record.Score, record.WordsFound, record.Time,
	)
	return err
}

func (l *ScoreLog) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT score, words_found, time FROM scores ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ScoreRecord
	for rows.Next() {
		var r model.ScoreRecord
		if err := rows.Scan(&r.Score, &r.WordsFound, &r.Time); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
