package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"golang.org/x/sync/errgroup"
)

// Lister fetches a full entity list
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Dashboard derives aggregate counts from fresh user and book lists
type Dashboard struct {
	users Lister[models.User]
	books Lister[models.Book]

	mu    sync.Mutex
	stats models.DashboardStats
}

func NewDashboard(users Lister[models.User], books Lister[models.Book]) *Dashboard {
	return &Dashboard{users: users, books: books}
}

// Refresh fetches both lists in parallel and recomputes the counts. Nothing
// is cached between calls; on failure the displayed counts are kept.
func (d *Dashboard) Refresh(ctx context.Context) (models.DashboardStats, error) {
	var users []models.User
	var books []models.Book

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = d.users.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		books, err = d.books.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("Error loading dashboard stats", "err", err)
		return d.Stats(), err
	}

	stats := Count(users, books)

	d.mu.Lock()
	d.stats = stats
	d.mu.Unlock()

	slog.Debug("Dashboard refreshed", "users", stats.TotalUsers, "books", stats.TotalBooks, "available", stats.AvailableBooks)
	return stats, nil
}

// Stats returns the counts from the last successful refresh
func (d *Dashboard) Stats() models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Count derives dashboard counts from the two lists
func Count(users []models.User, books []models.Book) models.DashboardStats {
	stats := models.DashboardStats{
		TotalUsers: len(users),
		TotalBooks: len(books),
	}
	for _, b := range books {
		if b.Available() {
			stats.AvailableBooks++
		}
	}
	return stats
}
