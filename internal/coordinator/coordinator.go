// Package coordinator keeps a rendered entity list in step with the backend
// across the load, edit, submit and reload cycle.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/lehigh-university-libraries/libadmin/internal/form"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/render"
)

var (
	// ErrInFlight is returned when a mutation for the same entity is already running
	ErrInFlight = errors.New("operation already in progress")
	// ErrCancelled is returned when the user declines a confirmation
	ErrCancelled = errors.New("cancelled by user")
	// ErrFormClosed is returned by Submit when no form is open
	ErrFormClosed = errors.New("no form is open")
)

// Presenter delivers messages to the user and asks for confirmations
type Presenter interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Resource is the backend surface the coordinator drives
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Remove(ctx context.Context, id string) error
}

// Config wires a Coordinator
type Config[T models.Entity] struct {
	// Noun names the entity in messages, lower case ("user", "book")
	Noun      string
	Resource  Resource[T]
	Validate  func(T) (T, error)
	Headers   []string
	Template  func(render.Handlers) render.RowTemplate[T]
	Presenter Presenter
	// AfterMutation runs after every successful create, update or delete
	AfterMutation func(ctx context.Context)
}

type Coordinator[T models.Entity] struct {
	noun      string
	title     string
	resource  Resource[T]
	validate  func(T) (T, error)
	presenter Presenter
	after     func(ctx context.Context)

	form     *form.Controller[T]
	table    *render.Table
	template render.RowTemplate[T]

	mu       sync.Mutex
	list     []T
	inflight map[string]struct{}
}

func New[T models.Entity](cfg Config[T]) *Coordinator[T] {
	c := &Coordinator[T]{
		noun:      cfg.Noun,
		title:     capitalize(cfg.Noun),
		resource:  cfg.Resource,
		validate:  cfg.Validate,
		presenter: cfg.Presenter,
		after:     cfg.AfterMutation,
		table:     render.NewTable(cfg.Headers...),
		inflight:  make(map[string]struct{}),
	}
	if c.validate == nil {
		c.validate = func(v T) (T, error) { return v, nil }
	}
	c.form = form.NewController[T](c.title, cfg.Resource.Get)
	c.template = cfg.Template(render.Handlers{
		Edit:   c.OpenEdit,
		Delete: c.Delete,
	})
	return c
}

func (c *Coordinator[T]) Table() *render.Table {
	return c.table
}

func (c *Coordinator[T]) Form() *form.Controller[T] {
	return c.form
}

// List returns the records from the last successful load
func (c *Coordinator[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.list))
	copy(out, c.list)
	return out
}

// Load fetches the full list and re-renders the table. On failure the
// previous list and table stay as they were.
func (c *Coordinator[T]) Load(ctx context.Context) error {
	records, err := c.resource.List(ctx)
	if err != nil {
		slog.Error("Failed to load list", "entity", c.noun, "err", err)
		c.alert(ctx, fmt.Sprintf("Error loading %ss: %v", c.noun, err))
		return err
	}

	// list and table are swapped together so overlapping loads cannot mix
	c.mu.Lock()
	c.list = records
	render.Render(c.table, records, c.template)
	c.mu.Unlock()

	slog.Debug("List rendered", "entity", c.noun, "count", len(records))
	return nil
}

// OpenCreate opens an empty form
func (c *Coordinator[T]) OpenCreate() {
	c.form.OpenCreate()
}

// OpenEdit opens the form populated with the record for id
func (c *Coordinator[T]) OpenEdit(ctx context.Context, id string) error {
	if err := c.form.OpenEdit(ctx, id); err != nil {
		slog.Error("Failed to load record for editing", "entity", c.noun, "id", id, "err", err)
		c.alert(ctx, fmt.Sprintf("Error loading %s data: %v", c.noun, err))
		return err
	}
	return nil
}

// Close cancels the open form
func (c *Coordinator[T]) Close() {
	c.form.Close()
}

// Submit validates the entered fields and creates or updates the record
// depending on the open form. The form is closed and the list reloaded only
// after the backend accepted the change; otherwise the form stays open with
// the entered values.
func (c *Coordinator[T]) Submit(ctx context.Context, fields T) (T, error) {
	var zero T

	session := c.form.Session()
	if session == nil {
		c.alert(ctx, fmt.Sprintf("Error saving %s: %v", c.noun, ErrFormClosed))
		return zero, ErrFormClosed
	}
	c.form.SetFields(fields)

	valid, err := c.validate(fields)
	if err != nil {
		c.alert(ctx, err.Error())
		return zero, err
	}

	release, err := c.acquire(session.TargetID)
	if err != nil {
		c.alert(ctx, fmt.Sprintf("Error saving %s: %v", c.noun, err))
		return zero, err
	}
	defer release()

	var saved T
	if session.Mode == models.FormModeEdit {
		slog.Debug("Updating record", "entity", c.noun, "id", session.TargetID)
		saved, err = c.resource.Update(ctx, session.TargetID, valid)
	} else {
		slog.Debug("Creating record", "entity", c.noun)
		saved, err = c.resource.Create(ctx, valid)
	}
	if err != nil {
		slog.Error("Failed to save record", "entity", c.noun, "err", err)
		c.alert(ctx, fmt.Sprintf("Error saving %s: %v", c.noun, err))
		return zero, err
	}

	c.form.Close()
	c.refresh(ctx)

	if session.Mode == models.FormModeEdit {
		c.alert(ctx, c.title+" updated successfully!")
	} else {
		c.alert(ctx, c.title+" added successfully!")
	}
	return saved, nil
}

// Delete removes the record for id once the user confirms. A failed delete
// leaves the current list untouched.
func (c *Coordinator[T]) Delete(ctx context.Context, id string) error {
	if c.presenter == nil {
		return fmt.Errorf("failed to confirm delete: no presenter configured")
	}
	ok, err := c.presenter.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete this %s?", c.noun))
	if err != nil {
		return fmt.Errorf("failed to confirm delete: %w", err)
	}
	if !ok {
		return ErrCancelled
	}

	release, err := c.acquire(id)
	if err != nil {
		c.alert(ctx, fmt.Sprintf("Error deleting %s: %v", c.noun, err))
		return err
	}
	defer release()

	if err := c.resource.Remove(ctx, id); err != nil {
		slog.Error("Failed to delete record", "entity", c.noun, "id", id, "err", err)
		c.alert(ctx, fmt.Sprintf("Error deleting %s: %v", c.noun, err))
		return err
	}

	c.refresh(ctx)
	c.alert(ctx, c.title+" deleted successfully!")
	return nil
}

// refresh reloads the list after a mutation. A failed reload has already
// been reported by Load; the mutation itself succeeded.
func (c *Coordinator[T]) refresh(ctx context.Context) {
	_ = c.Load(ctx)
	if c.after != nil {
		c.after(ctx)
	}
}

// acquire marks key as in flight. Creates share the empty key.
func (c *Coordinator[T]) acquire(key string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[key]; busy {
		if key == "" {
			return nil, fmt.Errorf("%w: create %s", ErrInFlight, c.noun)
		}
		return nil, fmt.Errorf("%w: %s %s", ErrInFlight, c.noun, key)
	}
	c.inflight[key] = struct{}{}
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.inflight, key)
	}, nil
}

func (c *Coordinator[T]) alert(ctx context.Context, msg string) {
	if c.presenter != nil {
		c.presenter.Alert(ctx, msg)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
