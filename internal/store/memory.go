package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Querier for tests and single-process development.
// Tables spring into existence on first use; ids auto-increment per table.
type Memory struct {
	mu     sync.Mutex
	tables map[string]*memTable
}

type memTable struct {
	nextID int64
	rows   []map[string]any
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string]*memTable)}
}

func (m *Memory) Count(_ context.Context, table string, equals map[string]any, excludeID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tbl, ok := m.tables[table]
	if !ok {
		return 0, nil
	}

	var n int64
	for _, row := range tbl.rows {
		if excludeID != 0 && rowID(row) == excludeID {
			continue
		}
		if rowMatches(row, equals) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) Insert(_ context.Context, table string, record map[string]any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tbl, ok := m.tables[table]
	if !ok {
		tbl = &memTable{nextID: 1}
		m.tables[table] = tbl
	}

	row := make(map[string]any, len(record)+1)
	for k, v := range record {
		row[k] = normalizeValue(v)
	}
	id := tbl.nextID
	tbl.nextID++
	row["id"] = id
	tbl.rows = append(tbl.rows, row)
	return id, nil
}

// Rows returns a snapshot of a table's rows. Test helper.
func (m *Memory) Rows(table string) []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	tbl, ok := m.tables[table]
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out
}

// Clear drops all tables. Use between tests to ensure isolation.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]*memTable)
}

func rowMatches(row map[string]any, equals map[string]any) bool {
	for field, want := range equals {
		got, ok := row[field]
		if !ok || got != normalizeValue(want) {
			return false
		}
	}
	return true
}

func rowID(row map[string]any) int64 {
	id, _ := row["id"].(int64)
	return id
}

// normalizeValue widens integer kinds to int64 so predicate comparisons do not
// depend on which Go integer type a caller happened to use.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	default:
		return v
	}
}
