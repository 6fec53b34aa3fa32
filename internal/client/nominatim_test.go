package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"location-agent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Search(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		status      int
		body        string
		expected    *models.ResolvedLocation
		expectError bool
		notFound    bool
	}{
		{
			name:   "first result",
			query:  "Lekki Phase 1",
			status: http.StatusOK,
			body: `[{"place_id":1,"lat":"6.4478","lon":"3.4723","display_name":"Lekki Phase 1, Eti-Osa, Lagos State, Nigeria"},
				{"place_id":2,"lat":"1","lon":"1","display_name":"ignored"}]`,
			expected: &models.ResolvedLocation{
				Latitude:  6.4478,
				Longitude: 3.4723,
				Address:   "Lekki Phase 1, Eti-Osa, Lagos State, Nigeria",
			},
		},
		{
			name:        "no results",
			query:       "xyzzy nowhere 123",
			status:      http.StatusOK,
			body:        `[]`,
			expectError: true,
			notFound:    true,
		},
		{
			name:        "null body",
			query:       "xyzzy",
			status:      http.StatusOK,
			body:        `null`,
			expectError: true,
			notFound:    true,
		},
		{
			name:        "bad latitude",
			query:       "Ikeja",
			status:      http.StatusOK,
			body:        `[{"lat":"north","lon":"3.35","display_name":"Ikeja"}]`,
			expectError: true,
		},
		{
			name:        "rate limited",
			query:       "Ikeja",
			status:      http.StatusTooManyRequests,
			body:        `slow down`,
			expectError: true,
		},
		{
			name:        "malformed json",
			query:       "Ikeja",
			status:      http.StatusOK,
			body:        `{"not":"an array"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, tt.query, r.URL.Query().Get("q"))
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				assert.Equal(t, "LocationAgent/1.0", r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewNominatimClient(server.Client(), server.URL, "LocationAgent/1.0")

			result, err := c.Search(context.Background(), tt.query)

			assert.Equal(t, 1, calls)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrLocationNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNominatimClient_SearchNotFoundNamesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewNominatimClient(server.Client(), server.URL, "LocationAgent/1.0")

	_, err := c.Search(context.Background(), "Qwxz Plaza, Atlantis")

	var notFound *models.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Qwxz Plaza, Atlantis", notFound.Query)
	assert.Equal(t, "Location 'Qwxz Plaza, Atlantis' not found", err.Error())
}
