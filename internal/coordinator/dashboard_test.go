package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listFunc[T any] func(ctx context.Context) ([]T, error)

func (f listFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

func TestCount(t *testing.T) {
	books := []models.Book{
		{Status: models.StatusAvailable},
		{Status: models.StatusUnavailable},
		{Status: models.StatusBorrowed},
		{Status: models.StatusAvailable},
	}
	stats := Count(make([]models.User, 3), books)
	assert.Equal(t, models.DashboardStats{TotalUsers: 3, TotalBooks: 4, AvailableBooks: 2}, stats)
}

func TestDashboardRefetchesEveryTime(t *testing.T) {
	calls := 0
	books := []models.Book{{ID: "1", Title: "Dune", Status: models.StatusAvailable}}
	d := NewDashboard(
		listFunc[models.User](func(context.Context) ([]models.User, error) { calls++; return []models.User{{ID: "1"}}, nil }),
		listFunc[models.Book](func(context.Context) ([]models.Book, error) { return books, nil }),
	)

	stats, err := d.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TotalUsers: 1, TotalBooks: 1, AvailableBooks: 1}, stats)

	books = append(books, models.Book{ID: "2", Title: "Emma", Status: models.StatusUnavailable})
	stats, err = d.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TotalUsers: 1, TotalBooks: 2, AvailableBooks: 1}, stats)
	assert.Equal(t, 2, calls)
}

func TestDashboardFailureKeepsLastStats(t *testing.T) {
	fail := false
	d := NewDashboard(
		listFunc[models.User](func(context.Context) ([]models.User, error) { return []models.User{{ID: "1"}}, nil }),
		listFunc[models.Book](func(context.Context) ([]models.Book, error) {
			if fail {
				return nil, errors.New("HTTP error! status: 500")
			}
			return nil, nil
		}),
	)

	_, err := d.Refresh(context.Background())
	require.NoError(t, err)

	fail = true
	stats, err := d.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list books")
	assert.Equal(t, models.DashboardStats{TotalUsers: 1}, stats)
}
