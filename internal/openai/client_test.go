package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haojie06/openai-image-http/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{Token: "sk-test", Endpoint: server.URL, Timeout: time.Second})
	require.NoError(t, err)
	return client
}

func catRequest() model.ImageGenerationRequest {
	return model.ImageGenerationRequest{Prompt: "cat", N: 2, Size: model.Size512x512}
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrMissingToken)
	assert.NoError(t, Config{Token: "sk-test"}.Validate())

	_, err := NewClient(Config{Endpoint: "http://localhost"})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestNewClientDefaultsEndpoint(t *testing.T) {
	client, err := NewClient(Config{Token: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, client.config.Endpoint)
}

func TestGenerateSendsRequest(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prompt":"cat","n":2,"size":"512x512"}`, string(body))

		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"a"},{"url":"b"}]}`))
	})

	result, err := client.Generate(context.Background(), catRequest())
	require.NoError(t, err)
	assert.Equal(t, Success{Lines: []model.ResultLine{{URL: "a"}, {URL: "b"}}}, result)
	assert.Equal(t, 1, calls)
}

func TestGenerateResponseShapes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Result
	}{
		{
			name:   "api error",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"message":"rate limited","type":"requests"}}`,
			want:   Failure{Message: "rate limited"},
		},
		{
			name:   "error without message",
			status: http.StatusBadRequest,
			body:   `{"error":{}}`,
			want:   Failure{Message: messageEmptyError},
		},
		{
			name:   "error and data",
			status: http.StatusOK,
			body:   `{"data":[{"url":"a"}],"error":{"message":"both"}}`,
			want:   Failure{Message: "both"},
		},
		{
			name:   "neither data nor error",
			status: http.StatusOK,
			body:   `{"created":1}`,
			want:   Failure{Message: messageEmptyPayload},
		},
		{
			name:   "empty data",
			status: http.StatusOK,
			body:   `{"data":[]}`,
			want:   Success{Lines: []model.ResultLine{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.Generate(context.Background(), catRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestGenerateTransportErrors(t *testing.T) {
	t.Run("non json body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})

		result, err := client.Generate(context.Background(), catRequest())
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrUpstreamTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client, err := NewClient(Config{Token: "sk-test", Endpoint: server.URL, Timeout: 50 * time.Millisecond})
		require.NoError(t, err)

		result, err := client.Generate(context.Background(), catRequest())
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrUpstreamTransport)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		client, err := NewClient(Config{Token: "sk-test", Endpoint: endpoint, Timeout: time.Second})
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), catRequest())
		assert.ErrorIs(t, err, ErrUpstreamTransport)
	})
}

func TestResultFromResponseKeepsLines(t *testing.T) {
	var resp model.ImageGenerationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"url":"https://img/1.png"}]}`), &resp))

	assert.Equal(t, Success{Lines: []model.ResultLine{{URL: "https://img/1.png"}}}, resultFromResponse(resp))
}
