package providers

import (
	"context"
	"encoding/json"
)

// Default projection requested for every catalog query.
var DefaultProps = []string{"id", "title", "slug", "metadata"}

// Query describes a filtered read against the content store.
// Metadata keys are metadata field names without the "metadata." prefix.
type Query struct {
	Type     string
	Slug     string
	Metadata map[string]any
	Props    []string
	Depth    int
	Limit    int
}

// Filter returns the store filter document for the query.
func (q Query) Filter() map[string]any {
	filter := make(map[string]any, 2+len(q.Metadata))
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Slug != "" {
		filter["slug"] = q.Slug
	}
	for field, value := range q.Metadata {
		filter["metadata."+field] = value
	}
	return filter
}

// Object is a raw record returned by the content store. Metadata is kept
// undecoded so callers can map it to their own types.
type Object struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Type       string          `json:"type,omitempty"`
	Content    string          `json:"content,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
	ModifiedAt string          `json:"modified_at,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}

// HasMetadata reports whether the record carries a metadata block.
func (o Object) HasMetadata() bool {
	m := o.Metadata
	return len(m) > 0 && string(m) != "null"
}

// ObjectStore reads records from a content store.
// Both methods return ErrNotFound when nothing matches.
type ObjectStore interface {
	FindObjects(ctx context.Context, q Query) ([]Object, error)
	FindObject(ctx context.Context, q Query) (Object, error)
}
