package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// Postgres implements Querier over database/sql with the lib/pq driver.
// Table and field names come from trusted configuration, never from user
// input; they are still quoted defensively via pq.QuoteIdentifier.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Count(ctx context.Context, table string, equals map[string]any, excludeID int64) (int64, error) {
	conds := make([]string, 0, len(equals)+1)
	args := make([]any, 0, len(equals)+1)
	for _, field := range sortedFields(equals) {
		args = append(args, equals[field])
		conds = append(conds, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(field), len(args)))
	}
	if excludeID != 0 {
		args = append(args, excludeID)
		conds = append(conds, fmt.Sprintf("id <> $%d", len(args)))
	}

	query := "SELECT COUNT(*) FROM " + pq.QuoteIdentifier(table)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *Postgres) Insert(ctx context.Context, table string, record map[string]any) (int64, error) {
	fields := sortedFields(record)
	cols := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, field := range fields {
		args = append(args, record[field])
		cols = append(cols, pq.QuoteIdentifier(field))
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		pq.QuoteIdentifier(table),
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %s: %w", table, sentinel.ErrAlreadyUsed)
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// sortedFields keeps generated SQL deterministic across calls.
func sortedFields(m map[string]any) []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
