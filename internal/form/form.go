// Package form tracks the single create/edit form of the console.
package form

import (
	"context"
	"sync"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// State of the form
type State int

const (
	Closed State = iota
	OpenForCreate
	OpenForEdit
)

func (s State) String() string {
	switch s {
	case OpenForCreate:
		return "open_for_create"
	case OpenForEdit:
		return "open_for_edit"
	default:
		return "closed"
	}
}

// Loader fetches the record being edited
type Loader[T any] func(ctx context.Context, id string) (T, error)

// Controller owns at most one form session at a time. Opening a form while
// another is open replaces the session.
type Controller[T any] struct {
	noun   string
	loader Loader[T]

	mu      sync.Mutex
	state   State
	session *models.FormSession
	title   string
	fields  T
}

// NewController creates a controller for the entity named by noun ("User", "Book")
func NewController[T any](noun string, loader Loader[T]) *Controller[T] {
	return &Controller[T]{noun: noun, loader: loader}
}

// OpenCreate clears the fields and opens an empty form
func (c *Controller[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.fields = zero
	c.state = OpenForCreate
	c.session = &models.FormSession{Mode: models.FormModeCreate}
	c.title = "Add New " + c.noun
}

// OpenEdit loads the record with the given id and opens the form populated
// with it. If loading fails the form is left closed.
func (c *Controller[T]) OpenEdit(ctx context.Context, id string) error {
	c.Close()

	record, err := c.loader(ctx, id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = record
	c.state = OpenForEdit
	c.session = &models.FormSession{Mode: models.FormModeEdit, TargetID: id}
	c.title = "Edit " + c.noun
	return nil
}

// Close discards the session and resets the fields
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.fields = zero
	c.state = Closed
	c.session = nil
	c.title = ""
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the current session, or nil when closed
func (c *Controller[T]) Session() *models.FormSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Controller[T]) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

func (c *Controller[T]) Fields() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields records what was entered into the open form
func (c *Controller[T]) SetFields(fields T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = fields
}
