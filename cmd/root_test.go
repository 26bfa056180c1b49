package cmd

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/libadmin/internal/handlers"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes one libadmin invocation against baseURL
func run(t *testing.T, baseURL, stdin string, args ...string) result {
	t.Helper()
	root := NewRootCmd()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--base-url", baseURL}, args...))

	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func newTestBackend(t *testing.T) (*handlers.Handler, string) {
	t.Helper()
	h := handlers.New()
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return h, srv.URL + "/api"
}

func TestUsersLifecycle(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "users", "add", "--user-id", "u1", "--name", "Ann", "--email", "ann@x.com", "--role", "admin")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "User added successfully!")

	res = run(t, base, "", "users", "list", "-o", "csv")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,userId,name,email,role", lines[0])
	id := strings.SplitN(lines[1], ",", 2)[0]
	assert.Equal(t, id+",u1,Ann,ann@x.com,admin", lines[1])

	res = run(t, base, "", "users", "edit", id, "--role", "staff")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "User updated successfully!")

	res = run(t, base, "", "users", "get", id, "-o", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[{"id":"`+id+`","userId":"u1","name":"Ann","email":"ann@x.com","role":"staff"}]`, res.stdout)

	res = run(t, base, "n\n", "users", "delete", id)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Are you sure you want to delete this user? [y/N]:")
	assert.NotContains(t, res.stderr, "deleted successfully")

	res = run(t, base, "", "users", "get", id, "-o", "csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, id+",u1,Ann")

	res = run(t, base, "", "--yes", "users", "delete", id)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "User deleted successfully!")

	res = run(t, base, "", "users", "list", "-o", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[]`, res.stdout)
}

func TestUsersAddValidation(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "users", "add", "--name", "Ann", "--email", "ann@x.com", "--role", "admin")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Please enter a User ID")

	res = run(t, base, "", "users", "add", "--user-id", "u1", "--name", "Ann", "--email", "ann@", "--role", "admin")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Please enter a valid email address")
}

func TestUsersDeleteMissing(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "--yes", "users", "delete", "42")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Error deleting user: HTTP error! status: 404")
}

func TestBooksAndDashboard(t *testing.T) {
	h, base := newTestBackend(t)
	h.SeedUser(models.User{UserID: "u1", Name: "Ann", Email: "ann@x.com", Role: "admin"})
	h.SeedBook(models.Book{Title: "Emma", Author: "Jane Austen", Status: models.StatusBorrowed, Department: "Fiction"})

	res := run(t, base, "", "books", "add", "--title", "Dune", "--author", "Frank Herbert", "--status", "available", "--department", "Science")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Book added successfully!")

	res = run(t, base, "", "books", "add", "--title", "Dune", "--status", "lost")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "status must be one of")

	res = run(t, base, "", "books", "search", "dune", "-o", "csv")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], ",Dune,Frank Herbert,,available")

	res = run(t, base, "", "books", "search", "--department", "Fiction", "-o", "csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Emma")
	assert.NotContains(t, res.stdout, "Dune")

	res = run(t, base, "", "dashboard", "-o", "csv")
	require.NoError(t, res.err)
	assert.Equal(t, "total_users,total_books,available_books\n1,2,1\n", res.stdout)

	res = run(t, base, "", "books", "list")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "ID"))
	assert.Contains(t, res.stdout, "TITLE")
}

func TestPages(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "pages", "-o", "csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "name,path,icon\n")
	assert.Contains(t, res.stdout, "Dashboard,")
}

func TestExport(t *testing.T) {
	h, base := newTestBackend(t)
	dune := h.SeedBook(models.Book{Title: "Dune", Author: "Frank Herbert", Status: models.StatusAvailable})

	path := filepath.Join(t.TempDir(), "books.parquet")
	res := run(t, base, "", "export", "books", path)
	require.NoError(t, res.err)

	books, err := parquet.ReadFile[models.Book](path)
	require.NoError(t, err)
	assert.Equal(t, []models.Book{dune}, books)
}

func TestUnsupportedOutput(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "users", "list", "-o", "xml")
	assert.ErrorContains(t, res.err, "unsupported output format")
}
