package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

// Config controls how the client reaches a Cosmic bucket.
type Config struct {
	BaseURL    string
	BucketSlug string
	ReadKey    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client reads objects from the Cosmic REST API.
type Client struct {
	baseURL    string
	bucketSlug string
	readKey    string
	httpClient httpDoer
	now        func() time.Time
}

var _ providers.ObjectStore = (*Client)(nil)

// NewClient constructs a Cosmic client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		bucketSlug: cfg.BucketSlug,
		readKey:    cfg.ReadKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FindObjects returns every object matching the query.
func (c *Client) FindObjects(ctx context.Context, q providers.Query) ([]providers.Object, error) {
	payload, err := c.fetch(ctx, q, q.Limit)
	if err != nil {
		return nil, err
	}
	if len(payload.Objects) == 0 && payload.Object != nil {
		return []providers.Object{*payload.Object}, nil
	}
	if payload.Objects == nil {
		return []providers.Object{}, nil
	}
	return payload.Objects, nil
}

// FindObject returns the first object matching the query.
func (c *Client) FindObject(ctx context.Context, q providers.Query) (providers.Object, error) {
	payload, err := c.fetch(ctx, q, 1)
	if err != nil {
		return providers.Object{}, err
	}
	if payload.Object != nil {
		return *payload.Object, nil
	}
	if len(payload.Objects) > 0 {
		return payload.Objects[0], nil
	}
	return providers.Object{}, fmt.Errorf("cosmic: %w", providers.ErrNotFound)
}

func (c *Client) fetch(ctx context.Context, q providers.Query, limit int) (objectsResponse, error) {
	req, err := c.buildRequest(ctx, q, limit)
	if err != nil {
		return objectsResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return objectsResponse{}, redactURLError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return objectsResponse{}, c.statusError(resp)
	}

	var payload objectsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return objectsResponse{}, fmt.Errorf("cosmic: decode objects: %w", err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, q providers.Query, limit int) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/buckets/%s/objects", c.baseURL, url.PathEscape(c.bucketSlug))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	filter, err := json.Marshal(q.Filter())
	if err != nil {
		return nil, fmt.Errorf("cosmic: encode query: %w", err)
	}

	props := q.Props
	if len(props) == 0 {
		props = providers.DefaultProps
	}

	params := url.Values{}
	params.Set("query", string(filter))
	params.Set("props", strings.Join(props, ","))
	params.Set("depth", strconv.Itoa(q.Depth))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if c.readKey != "" {
		params.Set("read_key", c.readKey)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		msg = parsed.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("cosmic: %w", providers.ErrNotFound)
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    msg,
		}
	default:
		return fmt.Errorf("cosmic: unexpected status %d: %s", resp.StatusCode, msg)
	}
}

// redactURLError strips the query string, which carries the read key, from a
// transport error before it reaches logs or spans.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	safe := *urlErr
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		u.User = nil
		safe.URL = u.String()
	} else {
		safe.URL = "<redacted>"
	}
	return fmt.Errorf("cosmic: %w", &safe)
}
