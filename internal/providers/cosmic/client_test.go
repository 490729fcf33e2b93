package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/v3/",
		BucketSlug: "gaming-catalog",
		ReadKey:    "read-secret",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFindObjectsBuildsQueryAndDecodes(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return respond(http.StatusOK, `{
			"objects": [
				{"id": "g1", "slug": "halo", "title": "Halo", "metadata": {"game_title": "Halo"}},
				{"id": "g2", "slug": "doom", "title": "Doom", "metadata": {"game_title": "Doom"}}
			],
			"total": 2
		}`), nil
	})

	objects, err := client.FindObjects(context.Background(), providers.Query{
		Type:     "games",
		Metadata: map[string]any{"genre": "genre-123"},
		Depth:    1,
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/v3/buckets/gaming-catalog/objects", captured.URL.Path)

	q := captured.URL.Query()
	assert.Equal(t, "read-secret", q.Get("read_key"))
	assert.Equal(t, "id,title,slug,metadata", q.Get("props"))
	assert.Equal(t, "1", q.Get("depth"))
	assert.Empty(t, q.Get("limit"))

	var filter map[string]any
	require.NoError(t, json.Unmarshal([]byte(q.Get("query")), &filter))
	assert.Equal(t, map[string]any{"type": "games", "metadata.genre": "genre-123"}, filter)

	require.Len(t, objects, 2)
	assert.Equal(t, "halo", objects[0].Slug)
	assert.JSONEq(t, `{"game_title":"Halo"}`, string(objects[0].Metadata))
}

func TestFindObjectsMapsNotFound(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusNotFound, `{"status":404,"message":"No objects found"}`), nil
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "genres"})

	assert.True(t, providers.IsNotFound(err), "got %v", err)
}

func TestFindObjectsEmptyPayloadYieldsEmptySlice(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"total":0}`), nil
	})

	objects, err := client.FindObjects(context.Background(), providers.Query{Type: "genres"})

	require.NoError(t, err)
	assert.NotNil(t, objects)
	assert.Empty(t, objects)
}

func TestFindObjectsSurfacesRateLimit(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := respond(http.StatusTooManyRequests, `{"status":429,"message":"Too many requests"}`)
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "games"})

	rl, ok := providers.AsRateLimitError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
	assert.Equal(t, "cosmic", rl.Provider)
	assert.Equal(t, "Too many requests", rl.Message)
}

func TestFindObjectsHandlesServerError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "boom"), nil
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "games"})

	require.Error(t, err)
	assert.False(t, providers.IsNotFound(err))
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "boom")
}

func TestFindObjectsHandlesDecodeError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, "{bad json"), nil
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "games"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFindObjectsHandlesTransportError(t *testing.T) {
	dial := errors.New("connection refused")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, dial
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "games"})

	assert.ErrorIs(t, err, dial)
}

func TestTransportErrorOmitsReadKey(t *testing.T) {
	client := NewClient(Config{
		BaseURL:    "http://127.0.0.1:1",
		BucketSlug: "b",
		ReadKey:    "super-secret-read-key",
		Timeout:    time.Second,
	})

	_, err := client.FindObjects(context.Background(), providers.Query{Type: "games"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret-read-key")
	assert.NotContains(t, err.Error(), "read_key")
	assert.Contains(t, err.Error(), "/buckets/b/objects")

	_, err = client.FindObject(context.Background(), providers.Query{Type: "games", Slug: "halo"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret-read-key")
}

func TestRedactURLErrorKeepsCause(t *testing.T) {
	dial := errors.New("connection refused")
	err := redactURLError(&url.Error{Op: "Get", URL: "http://x/buckets/b/objects?read_key=k&depth=1", Err: dial})

	assert.ErrorIs(t, err, dial)
	assert.NotContains(t, err.Error(), "read_key")

	plain := errors.New("plain")
	assert.Same(t, plain, redactURLError(plain))
}

func TestFindObjectSendsSlugAndLimit(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return respond(http.StatusOK, `{"object":{"id":"g1","slug":"halo","title":"Halo","metadata":{}}}`), nil
	})

	obj, err := client.FindObject(context.Background(), providers.Query{Type: "games", Slug: "halo", Depth: 1})
	require.NoError(t, err)

	assert.Equal(t, "g1", obj.ID)
	assert.Equal(t, "1", captured.URL.Query().Get("limit"))

	var filter map[string]any
	require.NoError(t, json.Unmarshal([]byte(captured.URL.Query().Get("query")), &filter))
	assert.Equal(t, "halo", filter["slug"])
}

func TestFindObjectAcceptsObjectsArray(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"objects":[{"id":"d1","slug":"nova","title":"Nova"}]}`), nil
	})

	obj, err := client.FindObject(context.Background(), providers.Query{Type: "developers", Slug: "nova"})

	require.NoError(t, err)
	assert.Equal(t, "d1", obj.ID)
	assert.False(t, obj.HasMetadata())
}

func TestFindObjectEmptyResultIsNotFound(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"objects":[]}`), nil
	})

	_, err := client.FindObject(context.Background(), providers.Query{Type: "games", Slug: "nonexistent"})

	assert.ErrorIs(t, err, providers.ErrNotFound)
}

func TestClientAgainstHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("read_key") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"objects":[{"id":"x","slug":"x","title":"X","metadata":{"genre_name":"X"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, BucketSlug: "b", ReadKey: "k"})
	objects, err := client.FindObjects(context.Background(), providers.Query{Type: "genres"})

	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "x", objects[0].ID)
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	require.True(t, ok, "expected default http client")
	assert.Equal(t, defaultHTTPTimeout, httpClient.Timeout)
	assert.Equal(t, defaultBaseURL, c.baseURL)
}
