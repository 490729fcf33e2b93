package domain

import (
	"bytes"
	"encoding/json"
)

// Ref is a one-level relation field. The store returns the related id as a
// string at depth 0 and the related object at depth 1; Ref accepts both.
type Ref[T any] struct {
	ID     string
	Object *T
}

// NewRef builds a resolved reference.
func NewRef[T any](id string, obj *T) Ref[T] {
	return Ref[T]{ID: id, Object: obj}
}

// IsZero reports whether the field was empty or missing.
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Object == nil
}

// Resolved reports whether the related object was embedded.
func (r Ref[T]) Resolved() bool {
	return r.Object != nil
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = Ref[T]{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var ident struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &ident); err != nil {
		return err
	}
	obj := new(T)
	if err := json.Unmarshal(data, obj); err != nil {
		return err
	}
	r.ID = ident.ID
	r.Object = obj
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.Object != nil:
		return json.Marshal(r.Object)
	case r.ID != "":
		return json.Marshal(r.ID)
	default:
		return []byte("null"), nil
	}
}
