package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/tauqeerkhan/portfolio/internal/storage"
)

// SQLiteStore keeps messages in the local database. It backs the admin
// inbox and stands in for Firestore when that is not configured.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, f Form) (string, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, f.Name, f.Email, f.Subject, f.Message, s.now().UTC().Format(storage.TimeLayout))
	if err != nil {
		return "", fmt.Errorf("insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("message id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

// List returns the newest messages first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var (
			m  Message
			id int64
			ts string
		)
		if err := rows.Scan(&id, &m.Name, &m.Email, &m.Subject, &m.Message, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.ID = strconv.FormatInt(id, 10)
		m.CreatedAt = storage.ParseTime(ts)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}
