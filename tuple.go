package tuplemapper

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// Element is a single named member of a Tuple.
type Element struct {
	Alias string
	Value any
}

// Tuple is an ordered, read-only collection of named values. Implementations
// must be safe for concurrent readers.
type Tuple interface {
	// Elements returns the members in tuple order. Callers must not modify
	// the returned slice.
	Elements() []Element
	// Get returns the value for the given alias. The second return value is
	// false when no element carries that alias.
	Get(alias string) (any, bool)
}

// Row is the canonical Tuple implementation.
type Row struct {
	elems   []Element
	byAlias map[string]int
}

// NewRow builds a Row from the given elements, preserving order. When the
// same alias appears more than once the first occurrence wins for lookups.
func NewRow(elems ...Element) *Row {
	r := &Row{elems: elems, byAlias: make(map[string]int, len(elems))}
	for i, e := range elems {
		if _, ok := r.byAlias[e.Alias]; !ok {
			r.byAlias[e.Alias] = i
		}
	}
	return r
}

// RowFromMap builds a Row from a map. Element order is the sorted alias
// order, so two equal maps always produce element-wise equal rows.
func RowFromMap(values map[string]any) *Row {
	aliases := make([]string, 0, len(values))
	for k := range values {
		aliases = append(aliases, k)
	}
	sort.Strings(aliases)
	elems := make([]Element, len(aliases))
	for i, a := range aliases {
		elems[i] = Element{Alias: a, Value: values[a]}
	}
	return NewRow(elems...)
}

// RowFromJSON builds a Row from a JSON object document. Nested values stay
// as-is (map[string]any, []any); numeric values decode as float64.
func RowFromJSON(data []byte) (*Row, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("tuplemapper: decoding JSON row: %w", err)
	}
	return RowFromMap(values), nil
}

// Elements implements Tuple. The returned slice is shared; do not modify.
func (r *Row) Elements() []Element { return r.elems }

// Get implements Tuple.
func (r *Row) Get(alias string) (any, bool) {
	i, ok := r.byAlias[alias]
	if !ok {
		return nil, false
	}
	return r.elems[i].Value, true
}

// Rows is the subset of *sql.Rows (or any compatible result cursor) needed
// to collect tuples.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// CollectRows drains a result cursor into one Tuple per row, with column
// names as aliases. The cursor is not closed; that stays with the caller.
func CollectRows(rows Rows) ([]Tuple, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("tuplemapper: reading columns: %w", err)
	}
	tuples := make([]Tuple, 0, 8)
	for rows.Next() {
		values := make([]any, len(cols))
		dests := make([]any, len(cols))
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("tuplemapper: scanning row %d: %w", len(tuples), err)
		}
		elems := make([]Element, len(cols))
		for i, c := range cols {
			elems[i] = Element{Alias: c, Value: values[i]}
		}
		tuples = append(tuples, NewRow(elems...))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tuplemapper: iterating rows: %w", err)
	}
	return tuples, nil
}
