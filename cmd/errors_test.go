package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/lehigh-university-libraries/libadmin/internal/api"
	"github.com/lehigh-university-libraries/libadmin/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorSkipsAlerted(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		printed bool
	}{
		{"alerted", alerted(errors.New("Error deleting user: HTTP error! status: 404")), false},
		{"alerted and wrapped", errors.Join(alerted(errors.New("boom"))), false},
		{"plain", errors.New(`unsupported output format "xml"`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			HandleError(&buf, fang.Styles{}, tt.err)
			assert.Equal(t, tt.printed, buf.Len() > 0)
		})
	}

	assert.NoError(t, alerted(nil))
}

func TestAlertedErrorsAreShownOnce(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "--yes", "users", "delete", "42")
	require.Error(t, res.err)

	var buf bytes.Buffer
	HandleError(&buf, fang.Styles{}, res.err)
	assert.Empty(t, buf.String())
	assert.Contains(t, res.stderr, "Error deleting user: HTTP error! status: 404")

	var reqErr *api.RequestError
	require.True(t, errors.As(res.err, &reqErr))
	assert.True(t, reqErr.NotFound())
}

func TestGetMissingNamesRecord(t *testing.T) {
	_, base := newTestBackend(t)

	res := run(t, base, "", "books", "get", "b9")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "book b9 not found")

	var buf bytes.Buffer
	HandleError(&buf, fang.Styles{}, res.err)
	assert.NotEmpty(t, buf.String())
}

func TestBookAddMakesNoDashboardRequests(t *testing.T) {
	var mu sync.Mutex
	var requests []string
	routes := handlers.New().Routes()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		mu.Unlock()
		routes.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	res := run(t, srv.URL+"/api", "", "books", "add", "--title", "Dune", "--status", "available")
	require.NoError(t, res.err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"POST /api/books", "GET /api/books"}, requests)
}

func TestRootHelpListsEnvironment(t *testing.T) {
	root := NewRootCmd()
	assert.Contains(t, root.Long, "LIBADMIN_BASE_URL")
	assert.Contains(t, root.Long, "LIBADMIN_TIMEOUT")
}

func TestLookupErrorPassesOtherFailures(t *testing.T) {
	err := errors.New("network error: connection refused")
	assert.Same(t, err, lookupError("user", "1", err))
}
