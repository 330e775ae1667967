package init

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/shortcode-cli/internal/config"
)

func TestVerifyConnection_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pages", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	cfg := &config.Config{StoreURL: server.URL, StoreToken: "test-token"}

	err := verifyConnection(context.Background(), cfg)
	assert.NoError(t, err)
}

func TestVerifyConnection_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		errContain string
	}{
		{"401 Unauthorized", http.StatusUnauthorized, `{"message": "Unauthorized"}`, "check your store token"},
		{"403 Forbidden", http.StatusForbidden, `{"message": "Forbidden"}`, "check your permissions"},
		{"404 Not Found", http.StatusNotFound, ``, "API error (status 404)"},
		{"502 Bad Gateway", http.StatusBadGateway, `bad gateway`, "API error (status 502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			cfg := &config.Config{StoreURL: server.URL, StoreToken: "test-token"}

			err := verifyConnection(context.Background(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
		})
	}
}

func TestVerifyConnection_NetworkError(t *testing.T) {
	cfg := &config.Config{StoreURL: "http://localhost:99999"}

	err := verifyConnection(context.Background(), cfg)
	require.Error(t, err)
}

func TestAnswers_Config(t *testing.T) {
	tests := []struct {
		name    string
		answers answers
		want    *config.Config
		wantErr string
	}{
		{
			name:    "minimal",
			answers: answers{outputFormat: "table"},
			want:    &config.Config{OutputFormat: "table"},
		},
		{
			name: "full",
			answers: answers{
				storeURL:     " https://pages.example.com/ ",
				storeToken:   "tok ",
				outputFormat: "json",
				acceptedTags: "box, circle,",
			},
			want: &config.Config{
				AcceptedTags: []string{"box", "circle"},
				OutputFormat: "json",
				StoreURL:     "https://pages.example.com",
				StoreToken:   "tok",
			},
		},
		{
			name:    "invalid tag",
			answers: answers{outputFormat: "table", acceptedTags: "box,9x"},
			wantErr: `invalid tag name: "9x"`,
		},
		{
			name:    "invalid store URL",
			answers: answers{outputFormat: "table", storeURL: "pages.example.com"},
			wantErr: "store_url must use http or https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.answers.config()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
