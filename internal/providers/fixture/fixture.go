package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

//go:embed data/catalog.json
var catalogJSON []byte

// Store serves a static catalog with the same query semantics as the
// content store. It is useful for local runs and tests.
type Store struct {
	objects []providers.Object
	byID    map[string]providers.Object
}

var _ providers.ObjectStore = (*Store)(nil)

// New returns a Store seeded with the embedded example catalog.
func New() *Store {
	var payload struct {
		Objects []providers.Object `json:"objects"`
	}
	if err := json.Unmarshal(catalogJSON, &payload); err != nil {
		panic(fmt.Sprintf("fixture: embedded catalog is invalid: %v", err))
	}
	return NewFromObjects(payload.Objects)
}

// NewFromObjects returns a Store holding the given objects in order.
// Relation fields in metadata hold related object ids.
func NewFromObjects(objects []providers.Object) *Store {
	s := &Store{
		objects: append([]providers.Object(nil), objects...),
		byID:    make(map[string]providers.Object, len(objects)),
	}
	for _, obj := range s.objects {
		s.byID[obj.ID] = obj
	}
	return s
}

// FindObjects returns matching objects in insertion order.
func (s *Store) FindObjects(ctx context.Context, q providers.Query) ([]providers.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]providers.Object, 0)
	for _, obj := range s.objects {
		if !matches(obj, q) {
			continue
		}
		shaped, err := s.shape(obj, q)
		if err != nil {
			return nil, err
		}
		result = append(result, shaped)
		if q.Limit > 0 && len(result) >= q.Limit {
			break
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("fixture: %w", providers.ErrNotFound)
	}
	return result, nil
}

// FindObject returns the first matching object.
func (s *Store) FindObject(ctx context.Context, q providers.Query) (providers.Object, error) {
	q.Limit = 1
	objects, err := s.FindObjects(ctx, q)
	if err != nil {
		return providers.Object{}, err
	}
	return objects[0], nil
}

func matches(obj providers.Object, q providers.Query) bool {
	if q.Type != "" && obj.Type != q.Type {
		return false
	}
	if q.Slug != "" && obj.Slug != q.Slug {
		return false
	}
	if len(q.Metadata) == 0 {
		return true
	}

	meta, ok := decodeMetadata(obj)
	if !ok {
		return false
	}
	for field, want := range q.Metadata {
		if !fieldMatches(meta[field], want) {
			return false
		}
	}
	return true
}

// fieldMatches compares a metadata value with a filter value. Arrays match
// when any element matches; select fields match on key or value.
func fieldMatches(have, want any) bool {
	switch v := have.(type) {
	case nil:
		return false
	case []any:
		for _, item := range v {
			if fieldMatches(item, want) {
				return true
			}
		}
		return false
	case map[string]any:
		if id, ok := v["id"]; ok {
			return fieldMatches(id, want)
		}
		return fieldMatches(v["key"], want) || fieldMatches(v["value"], want)
	default:
		return fmt.Sprint(v) == fmt.Sprint(want)
	}
}

func (s *Store) shape(obj providers.Object, q providers.Query) (providers.Object, error) {
	if q.Depth > 0 && obj.HasMetadata() {
		expanded, err := s.expand(obj.Metadata, q.Depth)
		if err != nil {
			return providers.Object{}, err
		}
		obj.Metadata = expanded
	}
	return project(obj, q.Props), nil
}

// expand replaces related object ids in metadata with the related objects.
func (s *Store) expand(raw json.RawMessage, depth int) (json.RawMessage, error) {
	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("fixture: decode metadata: %w", err)
	}

	for field, value := range meta {
		switch v := value.(type) {
		case string:
			if related, ok := s.related(v, depth); ok {
				meta[field] = related
			}
		case []any:
			for i, item := range v {
				if id, ok := item.(string); ok {
					if related, ok := s.related(id, depth); ok {
						v[i] = related
					}
				}
			}
		}
	}
	return json.Marshal(meta)
}

func (s *Store) related(id string, depth int) (providers.Object, bool) {
	obj, ok := s.byID[id]
	if !ok {
		return providers.Object{}, false
	}
	if depth > 1 && obj.HasMetadata() {
		if nested, err := s.expand(obj.Metadata, depth-1); err == nil {
			obj.Metadata = nested
		}
	}
	return obj, true
}

func project(obj providers.Object, props []string) providers.Object {
	if len(props) == 0 {
		props = providers.DefaultProps
	}
	var out providers.Object
	for _, prop := range props {
		switch prop {
		case "id":
			out.ID = obj.ID
		case "slug":
			out.Slug = obj.Slug
		case "title":
			out.Title = obj.Title
		case "type":
			out.Type = obj.Type
		case "content":
			out.Content = obj.Content
		case "created_at":
			out.CreatedAt = obj.CreatedAt
		case "modified_at":
			out.ModifiedAt = obj.ModifiedAt
		case "metadata":
			out.Metadata = obj.Metadata
		}
	}
	return out
}

func decodeMetadata(obj providers.Object) (map[string]any, bool) {
	if !obj.HasMetadata() {
		return nil, false
	}
	var meta map[string]any
	if err := json.Unmarshal(obj.Metadata, &meta); err != nil {
		return nil, false
	}
	return meta, true
}
