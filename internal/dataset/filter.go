package dataset

import (
	"errors"
	"fmt"
)

// ErrNoEntityColumn is returned when an entity filter is applied to a table
// that has no Entity column.
var ErrNoEntityColumn = errors.New("dataset has no Entity column")

// UnknownColumnError reports a requested column that does not exist in the table.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column: %q", e.Column)
}

// View is an ordered projection over table rows. It has no identity of its
// own; it is recomputed on demand and never cached.
type View struct {
	Columns []string
	Rows    [][]string
}

// FilterByEntity retains the rows whose Entity value equals entity exactly
// (case-sensitive, no normalization) and projects the requested columns in the
// order given. An empty columns slice projects all columns. Zero matching rows
// yields an empty view, not an error; row order follows the source.
func (t *Table) FilterByEntity(entity string, columns []string) (*View, error) {
	entityIdx, ok := t.index[EntityColumn]
	if !ok {
		return nil, ErrNoEntityColumn
	}

	if len(columns) == 0 {
		columns = t.columns
	}
	idxs := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := t.index[name]
		if !ok {
			return nil, &UnknownColumnError{Column: name}
		}
		idxs[i] = idx
	}

	view := &View{Columns: append([]string(nil), columns...)}
	for _, row := range t.rows {
		if row[entityIdx] != entity {
			continue
		}
		projected := make([]string, len(idxs))
		for i, idx := range idxs {
			projected[i] = row[idx]
		}
		view.Rows = append(view.Rows, projected)
	}
	return view, nil
}

// Entities returns the distinct Entity values in first-seen order.
func (t *Table) Entities() ([]string, error) {
	entityIdx, ok := t.index[EntityColumn]
	if !ok {
		return nil, ErrNoEntityColumn
	}
	seen := make(map[string]bool)
	var entities []string
	for _, row := range t.rows {
		value := row[entityIdx]
		if seen[value] {
			continue
		}
		seen[value] = true
		entities = append(entities, value)
	}
	return entities, nil
}
