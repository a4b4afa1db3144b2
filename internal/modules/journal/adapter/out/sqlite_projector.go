package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pento/internal/modules/journal/domain"
	journalout "pento/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (journalout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  sensei_id TEXT NOT NULL,
  prompt_text TEXT NOT NULL,
  word_count INTEGER NOT NULL,
  day TEXT NOT NULL,
  completed_at TEXT NOT NULL,
  duration_sec INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_day ON sessions(day);
CREATE INDEX IF NOT EXISTS idx_sessions_sensei ON sessions(sensei_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Upsert(ctx context.Context, session domain.WritingSession) error {
	const stmt = `
INSERT INTO sessions (id, sensei_id, prompt_text, word_count, day, completed_at, duration_sec)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  sensei_id=excluded.sensei_id,
  prompt_text=excluded.prompt_text,
  word_count=excluded.word_count,
  day=excluded.day,
  completed_at=excluded.completed_at,
  duration_sec=excluded.duration_sec;
`
	_, err := s.db.ExecContext(ctx, stmt,
		session.ID,
		session.SenseiID,
		session.PromptText,
		session.WordCount,
		session.CompletedAt.Format(domain.DateLayout),
		session.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		session.DurationSec,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) SenseiCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sensei_id, COUNT(*) FROM sessions GROUP BY sensei_id`)
	if err != nil {
		return nil, fmt.Errorf("query sensei counts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var senseiID string
		var count int
		if err := rows.Scan(&senseiID, &count); err != nil {
			return nil, fmt.Errorf("scan sensei count: %w", err)
		}
		counts[senseiID] = count
	}
	return counts, rows.Err()
}

func (s *SQLiteHistoryProjector) WordsByDay(ctx context.Context, limit int) ([]domain.DayTotal, error) {
	const query = `
SELECT day, COUNT(*), SUM(word_count)
FROM sessions
GROUP BY day
ORDER BY day DESC
LIMIT ?
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query words by day: %w", err)
	}
	defer rows.Close()

	var totals []domain.DayTotal
	for rows.Next() {
		var total domain.DayTotal
		if err := rows.Scan(&total.Day, &total.Sessions, &total.Words); err != nil {
			return nil, fmt.Errorf("scan day total: %w", err)
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}
