package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salaJSON = `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"http://x/1.png","evolutions":{"before":[],"after":[2]}}]`

func catalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_ListToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := catalogServer(t, http.StatusOK, salaJSON)
	out := filepath.Join(t.TempDir(), "records.yaml")

	err := run(t.Context(), []string{"--endpoint", srv.URL, "--log-level", "error", "list", "--format", "yaml", "-o", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Sala")
}

func TestRun_ListFailsOnServerError(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := catalogServer(t, http.StatusInternalServerError, "oops")

	err := run(t.Context(), []string{"--endpoint", srv.URL, "--log-level", "error", "list"})
	assert.ErrorIs(t, err, errLoadFailed)
}

func TestRun_ShowUnknownRecord(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := catalogServer(t, http.StatusOK, salaJSON)

	err := run(t.Context(), []string{"--endpoint", srv.URL, "--log-level", "error", "show", "99"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 99 not found")
}

func TestRun_InvalidFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run(t.Context(), []string{"list", "--format", "csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRun_InvalidEndpoint(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run(t.Context(), []string{"--endpoint", "ftp://example.com", "list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestBrowseHelp_MentionsContentTypes(t *testing.T) {
	root := newRootCmd()

	browse, _, err := root.Find([]string{"browse"})
	require.NoError(t, err)

	for _, cmd := range []*cobra.Command{root, browse} {
		assert.Contains(t, cmd.Long, "text/plain", cmd.Name())
		assert.Contains(t, cmd.Long, "DEX_CATALOG_CONTENT_TYPES", cmd.Name())
	}
}
