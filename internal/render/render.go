// Package render turns entity lists into table rows.
//
// Every render replaces the container's content wholesale: rows appear in the
// order the backend returned them and cell values are used verbatim.
package render

import (
	"context"
)

// Action is a row-level trigger such as edit or delete. Run closes over the
// server id of the row's entity.
type Action struct {
	Name string
	Run  func(ctx context.Context) error
}

// Row is one rendered entity
type Row struct {
	ID      string
	Cells   []string
	Actions []Action
}

// Action looks up a trigger by name
func (r Row) Action(name string) (Action, bool) {
	for _, a := range r.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Container receives rendered rows
type Container interface {
	Replace(rows []Row)
}

// RowTemplate builds the row for one entity
type RowTemplate[T any] func(entity T) Row

// Render replaces all content of c with one row per entity
func Render[T any](c Container, entities []T, tmpl RowTemplate[T]) {
	rows := make([]Row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, tmpl(e))
	}
	c.Replace(rows)
}
