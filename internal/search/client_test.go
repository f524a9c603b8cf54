package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_PostsRequestToModeEndpoint(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"results": [{"name": "a.pdf", "path": "/docs/a.pdf", "type": "file", "size": 42}], "keywords": ["report", "q3"]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	resp, err := client.Search(context.Background(), ModeFind, Request{
		Query:    "report",
		BasePath: `C:\\docs`,
		Filters:  []string{"pdf"},
		Token:    "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "/find", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "report", gotBody["query"])
	assert.Equal(t, `C:\\docs`, gotBody["base_path"])
	assert.Equal(t, []any{"pdf"}, gotBody["filters"])
	assert.NotContains(t, gotBody, "Token")

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "a.pdf", resp.Results[0].Name)
	assert.Equal(t, int64(42), resp.Results[0].Size)
	assert.Equal(t, []string{"report", "q3"}, resp.Keywords)
}

func TestSearch_NoTokenOmitsAuthorization(t *testing.T) {
	var hasAuth bool
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"results": [], "keywords": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL+"/", time.Second, nil)
	_, err := client.Search(context.Background(), ModeSearch, Request{Query: "x"})

	require.NoError(t, err)
	assert.False(t, hasAuth)
	// nil filters still go out as an empty list
	assert.Equal(t, []any{}, gotBody["filters"])
}

func TestSearch_MissingFieldsDecodeAsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resp, err := NewHTTPClient(server.URL, time.Second, nil).Search(context.Background(), ModeCmd, Request{Query: "ls"})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Keywords)
	assert.Empty(t, resp.Keywords)
}

func TestSearch_OddResultFieldsStillSucceed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"path":"/a/b.pdf","size":"1.2 MB"},{"path":"/a/c.pdf","size":2048}],"keywords":["b"]}`))
	}))
	defer server.Close()

	resp, err := NewHTTPClient(server.URL, time.Second, nil).Search(context.Background(), ModeSearch, Request{Query: "b"})

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "1.2 MB", resp.Results[0].Metadata["size"])
	assert.Equal(t, int64(2048), resp.Results[1].Size)
	assert.Equal(t, []string{"b"}, resp.Keywords)
}

func TestSearch_NonSuccessStatus_ReturnsBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid API key"}`))
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL, time.Second, nil).Search(context.Background(), ModeSearch, Request{Query: "x"})

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusUnauthorized, backendErr.StatusCode)
	assert.Equal(t, "Invalid API key", backendErr.Detail)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestSearch_PlainTextErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index not ready", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL, time.Second, nil).Search(context.Background(), ModeSearch, Request{Query: "x"})

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "index not ready", backendErr.Detail)
}

func TestSearch_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "results not a list", body: `{"results": "nope"}`},
		{name: "result not an object", body: `{"results": [1, 2]}`},
		{name: "keywords wrong type", body: `{"results": [], "keywords": 7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHTTPClient(server.URL, time.Second, nil).Search(context.Background(), ModeSearch, Request{Query: "x"})

			var malformed *MalformedResponseError
			assert.True(t, errors.As(err, &malformed), "got %v", err)
		})
	}
}

func TestSearch_ConnectionRefused_ReturnsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPClient(url, time.Second, nil).Search(context.Background(), ModeSearch, Request{Query: "x"})

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "/search", transportErr.Endpoint)
}

func TestSearch_UnsupportedMode(t *testing.T) {
	_, err := NewHTTPClient("http://127.0.0.1:1", time.Second, nil).Search(context.Background(), Mode("grep"), Request{})

	var modeErr *UnsupportedModeError
	require.True(t, errors.As(err, &modeErr))
	assert.Equal(t, "unsupported search type: grep", err.Error())
}

func TestEscapeBasePath(t *testing.T) {
	assert.Equal(t, `C:\\Users\\me`, EscapeBasePath(`C:\Users\me`))
	assert.Equal(t, "/home/me", EscapeBasePath("/home/me"))
	assert.Equal(t, "", EscapeBasePath(""))
}
