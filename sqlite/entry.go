package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/skaranam/namartha"
)

// Compile-time interface verification.
var _ namartha.EntryService = (*EntryService)(nil)

// EntryService implements namartha.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateEntry creates a new entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *namartha.NameEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	entry.ID = uuid.New().String()
	return s.insertEntry(ctx, s.db, entry)
}

// CreateEntries creates multiple entries in one transaction. Either every
// entry is stored or none is.
func (s *EntryService) CreateEntries(ctx context.Context, entries []*namartha.NameEntry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, entry := range entries {
		entry.ID = uuid.New().String()
		if err := s.insertEntry(ctx, tx, entry); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// execer abstracts over DB and Tx for inserts.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *EntryService) insertEntry(ctx context.Context, ex execer, entry *namartha.NameEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	_, err = ex.ExecContext(ctx, `
		INSERT INTO entries (id, entry_number, devanagari, iast, data, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.EntryNumber, entry.Name.Devanagari, entry.Name.IAST,
		string(data), hashContent(data), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindEntryByNumber retrieves the entry with the given number.
func (s *EntryService) FindEntryByNumber(ctx context.Context, number int) (*namartha.NameEntry, error) {
	var data string

	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM entries WHERE entry_number = ? ORDER BY created_at DESC LIMIT 1
	`, number).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, namartha.Errorf(namartha.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return nil, err
	}

	return decodeEntry(data)
}

// FindEntries retrieves entries matching the filter, ordered by entry
// number ascending.
func (s *EntryService) FindEntries(ctx context.Context, filter namartha.EntryFilter) ([]*namartha.NameEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT data FROM entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.EntryNumber != nil {
		query.WriteString(" AND entry_number = ?")
		args = append(args, *filter.EntryNumber)
	}
	if filter.Devanagari != nil {
		query.WriteString(" AND devanagari = ?")
		args = append(args, *filter.Devanagari)
	}

	query.WriteString(" ORDER BY entry_number ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*namartha.NameEntry
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		entry, err := decodeEntry(data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return namartha.Errorf(namartha.ENOTFOUND, "entry not found")
	}

	return nil
}

func decodeEntry(data string) (*namartha.NameEntry, error) {
	var entry namartha.NameEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	return &entry, nil
}
