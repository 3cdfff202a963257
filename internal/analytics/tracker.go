// Package analytics records privacy-conscious page visits: client IPs are
// stored only as salted hashes, Do Not Track is honoured and old rows are
// purged after the retention window.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/storage"
)

type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Variant   string    `json:"variant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Tracker struct {
	db   *sql.DB
	salt string
	log  *zap.Logger
	now  func() time.Time
}

// NewTracker returns a tracker hashing IPs with salt. An empty salt gets a
// random per-process value, so hashes are only stable within one run.
func NewTracker(db *sql.DB, salt string, log *zap.Logger) *Tracker {
	if salt == "" {
		salt = RandomToken()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{db: db, salt: salt, log: log.Named("analytics"), now: time.Now}
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}

func (t *Tracker) Migrate(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		variant TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create visitors table: %w", err)
	}
	if _, err := t.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp)`); err != nil {
		return fmt.Errorf("create visitors index: %w", err)
	}
	return nil
}

// HashIP is consistent per IP for the lifetime of the tracker's salt.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack skips static assets, admin pages, the privacy page and
// requests carrying DNT: 1.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/metrics", "/health", "/ws/"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

func (t *Tracker) Record(ctx context.Context, ip, userAgent, path, variant string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, variant, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, t.HashIP(ip), userAgent, path, variant, t.now().UTC().Format(storage.TimeLayout))
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many went.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention).UTC().Format(storage.TimeLayout)
	res, err := t.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		t.log.Info("privacy cleanup removed old visitor records", zap.Int64("rows", n), zap.Duration("retention", retention))
	}
	return n, nil
}

// DeleteVisitor removes every visit recorded for ip.
func (t *Tracker) DeleteVisitor(ctx context.Context, ip string) (int64, error) {
	res, err := t.db.ExecContext(ctx, `DELETE FROM visitors WHERE hashed_ip = ?`, t.HashIP(ip))
	if err != nil {
		return 0, fmt.Errorf("delete visitor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete visitor: %w", err)
	}
	return n, nil
}

// RunCleanup purges old visits every interval until ctx is done.
func (t *Tracker) RunCleanup(ctx context.Context, retention, interval time.Duration) error {
	if _, err := t.Cleanup(ctx, retention); err != nil {
		t.log.Error("visitor cleanup failed", zap.Error(err))
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := t.Cleanup(ctx, retention); err != nil {
				t.log.Error("visitor cleanup failed", zap.Error(err))
			}
		}
	}
}

func (t *Tracker) Recent(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(variant, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Variant, &ts); err != nil {
			t.log.Warn("skipping unreadable visitor row", zap.Error(err))
			continue
		}
		v.Timestamp = storage.ParseTime(ts)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
