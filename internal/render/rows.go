package render

import (
	"context"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// Row action names
const (
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

var (
	UserHeaders = []string{"id", "userId", "name", "email", "role"}
	BookHeaders = []string{"id", "title", "author", "isbn", "status"}
)

// Handlers are the callbacks wired into every row's actions
type Handlers struct {
	Edit   func(ctx context.Context, id string) error
	Delete func(ctx context.Context, id string) error
}

func (h Handlers) actions(id string) []Action {
	var actions []Action
	if h.Edit != nil {
		actions = append(actions, Action{Name: ActionEdit, Run: func(ctx context.Context) error { return h.Edit(ctx, id) }})
	}
	if h.Delete != nil {
		actions = append(actions, Action{Name: ActionDelete, Run: func(ctx context.Context) error { return h.Delete(ctx, id) }})
	}
	return actions
}

// UserRow renders users
func UserRow(h Handlers) RowTemplate[models.User] {
	return func(u models.User) Row {
		return Row{
			ID:      u.ID,
			Cells:   []string{u.ID, u.UserID, u.Name, u.Email, u.Role},
			Actions: h.actions(u.ID),
		}
	}
}

// BookRow renders books
func BookRow(h Handlers) RowTemplate[models.Book] {
	return func(b models.Book) Row {
		return Row{
			ID:      b.ID,
			Cells:   []string{b.ID, b.Title, b.Author, b.ISBN, b.Status},
			Actions: h.actions(b.ID),
		}
	}
}
