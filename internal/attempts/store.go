package attempts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/knightsbridge/faqsite/internal/db"
	"github.com/knightsbridge/faqsite/internal/extension"
)

// Store persists download attempts.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record implements extension.Recorder.
func (s *Store) Record(ctx context.Context, a extension.Attempt) error {
	return s.Log(ctx, Entry{
		Owner:    a.Owner,
		Strategy: a.Strategy,
		Outcome:  a.Outcome,
		Detail:   a.Detail,
		Bytes:    a.Bytes,
	})
}

// Log inserts a new entry. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO download_attempts (id, owner, strategy, outcome, detail, bytes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Owner,
		entry.Strategy,
		string(entry.Outcome),
		entry.Detail,
		entry.Bytes,
	)
	if err != nil {
		return fmt.Errorf("inserting download attempt: %w", err)
	}
	return nil
}

// GetByID retrieves a single entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, owner, strategy, outcome, detail, bytes
		FROM download_attempts WHERE id = ?`, id)
	return scanInto(row)
}

// QueryFilter controls which entries are returned by Query.
type QueryFilter struct {
	Owner    string
	Strategy string
	Outcome  extension.Outcome
	Since    *time.Time
	Limit    int
	Offset   int
}

// Query returns entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Owner != "" {
		clauses = append(clauses, "owner = ?")
		args = append(args, filter.Owner)
	}
	if filter.Strategy != "" {
		clauses = append(clauses, "strategy = ?")
		args = append(args, filter.Strategy)
	}
	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT id, timestamp, owner, strategy, outcome, detail, bytes FROM download_attempts"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying download attempts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Summarize counts all attempts by strategy and outcome.
func (s *Store) Summarize(ctx context.Context) (*Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT strategy, outcome, COUNT(*) FROM download_attempts GROUP BY strategy, outcome")
	if err != nil {
		return nil, fmt.Errorf("summarizing download attempts: %w", err)
	}
	defer rows.Close()

	sum := &Summary{Counts: make(map[string]map[extension.Outcome]int)}
	for rows.Next() {
		var (
			strategy, outcome string
			n                 int
		)
		if err := rows.Scan(&strategy, &outcome, &n); err != nil {
			return nil, err
		}
		if sum.Counts[strategy] == nil {
			sum.Counts[strategy] = make(map[extension.Outcome]int)
		}
		sum.Counts[strategy][extension.Outcome(outcome)] = n
		sum.Total += n
	}
	return sum, rows.Err()
}

// DeleteBefore removes all entries older than the given time.
// Returns the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM download_attempts WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old download attempts: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Entry, error) {
	var (
		e       Entry
		ts      string
		outcome string
	)

	if err := sc.Scan(&e.ID, &ts, &e.Owner, &e.Strategy, &outcome, &e.Detail, &e.Bytes); err != nil {
		return nil, err
	}
	e.Outcome = extension.Outcome(outcome)

	for _, layout := range []string{time.DateTime, time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, ts); err == nil {
			e.Timestamp = t
			break
		}
	}
	return &e, nil
}
