package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skaranam/namartha"
)

// Compile-time interface verification.
var _ namartha.AnnotationService = (*AnnotationService)(nil)

// AnnotationService implements namartha.AnnotationService using SQLite.
type AnnotationService struct {
	db *DB
}

// NewAnnotationService creates a new AnnotationService.
func NewAnnotationService(db *DB) *AnnotationService {
	return &AnnotationService{db: db}
}

// CreateAnnotations stores a batch of annotations in one transaction. An
// annotation at an already-stored (line, position) replaces the stored row.
func (s *AnnotationService) CreateAnnotations(ctx context.Context, annotations []*namartha.WordAnnotation) error {
	for _, a := range annotations {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, a := range annotations {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to encode annotation: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO annotations (id, line_index, position_index, surface, data, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(line_index, position_index) DO UPDATE SET
				id = excluded.id,
				surface = excluded.surface,
				data = excluded.data,
				created_at = excluded.created_at
		`, a.ID, a.LineIndex, a.PositionIndex, a.SurfaceWord, string(data), now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindAnnotations retrieves annotations matching the filter, ordered by
// (line index, position index).
func (s *AnnotationService) FindAnnotations(ctx context.Context, filter namartha.AnnotationFilter) ([]*namartha.WordAnnotation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT data FROM annotations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.LineIndex != nil {
		query.WriteString(" AND line_index = ?")
		args = append(args, *filter.LineIndex)
	}

	query.WriteString(" ORDER BY line_index ASC, position_index ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []*namartha.WordAnnotation
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var a namartha.WordAnnotation
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			return nil, fmt.Errorf("failed to decode annotation: %w", err)
		}
		annotations = append(annotations, &a)
	}

	return annotations, rows.Err()
}

// DeleteAnnotations removes all stored annotations.
func (s *AnnotationService) DeleteAnnotations(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM annotations")
	return err
}
