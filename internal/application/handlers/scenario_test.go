package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
	"github.com/ersonp/dex/internal/infrastructure/catalogapi"
	"github.com/ersonp/dex/internal/infrastructure/config"
	"github.com/ersonp/dex/internal/infrastructure/logging"
)

// TestCatalogController_EndToEnd drives the controller through the HTTP client
// against canned server responses.
func TestCatalogController_EndToEnd(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   State
	}{
		{
			name:   "single record",
			status: http.StatusOK,
			body:   `[{"id":1,"name":"Sala","type":["plante"],"description":"d","image_url":"http://x/img.png","evolutions":{"before":[],"after":[2]}}]`,
			want: SuccessState([]entities.Record{{
				ID:          1,
				Name:        "Sala",
				Categories:  []string{"plante"},
				Description: "d",
				ImageURL:    "http://x/img.png",
				Evolutions:  entities.EvolutionChain{Before: []int{}, After: []int{2}},
			}}),
		},
		{
			name:   "empty array",
			status: http.StatusOK,
			body:   `[]`,
			want:   SuccessState([]entities.Record{}),
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `oops`,
			want:   ErrorState(),
		},
		{
			name:   "missing type",
			status: http.StatusOK,
			body:   `[{"id":1,"name":"X"}]`,
			want:   ErrorState(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := catalogapi.NewClient(config.CatalogConfig{Endpoint: srv.URL, Timeout: time.Second}, logging.Discard())
			require.NoError(t, err)

			c := newController(t, services.NewNetworkRecordRepository(client))

			assert.Equal(t, tt.want, waitState(t, c))
		})
	}
}

func TestCatalogController_EndToEnd_RetryAfterOutage(t *testing.T) {
	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := catalogapi.NewClient(config.CatalogConfig{Endpoint: srv.URL, Timeout: time.Second}, logging.Discard())
	require.NoError(t, err)

	c := newController(t, services.NewNetworkRecordRepository(client))
	require.Equal(t, ErrorState(), waitState(t, c))

	healthy.Store(true)
	c.Retry()
	assert.Equal(t, SuccessState([]entities.Record{}), waitState(t, c))
}
