package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProfileDocument is the free-form JSON stored in users.profile_json. The
// column accepts any JSON value, so arrays and scalars are kept as they are;
// only objects yield sub-fields. SQL NULL and the falsy JSON values null,
// false, 0 and "" all count as no document, which is the zero value.
type ProfileDocument struct {
	doc   any
	valid bool
}

// NewProfileDocument wraps an already decoded JSON value.
func NewProfileDocument(v any) ProfileDocument {
	switch d := v.(type) {
	case nil:
		return ProfileDocument{}
	case bool:
		if !d {
			return ProfileDocument{}
		}
	case float64:
		if d == 0 {
			return ProfileDocument{}
		}
	case string:
		if d == "" {
			return ProfileDocument{}
		}
	}
	return ProfileDocument{doc: v, valid: true}
}

// Present reports whether the column held a document.
func (p ProfileDocument) Present() bool {
	return p.valid
}

// Scan implements sql.Scanner for json/jsonb columns.
func (p *ProfileDocument) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = ProfileDocument{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case map[string]any, []any:
		*p = NewProfileDocument(v)
		return nil
	default:
		return fmt.Errorf("profile document: unsupported source type %T", src)
	}

	if len(raw) == 0 {
		*p = ProfileDocument{}
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("profile document: %w", err)
	}
	*p = NewProfileDocument(doc)
	return nil
}

// Value implements driver.Valuer.
func (p ProfileDocument) Value() (driver.Value, error) {
	if !p.valid {
		return nil, nil
	}
	return json.Marshal(p.doc)
}

func (p ProfileDocument) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.doc)
}

func (p *ProfileDocument) UnmarshalJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*p = NewProfileDocument(doc)
	return nil
}

// Object returns the sub-document under key, or an empty map when the
// document is absent, not an object, or the value is not an object.
func (p ProfileDocument) Object(key string) map[string]any {
	if v, ok := p.field(key).(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// List returns the array under key, or an empty slice when the document is
// absent, not an object, or the value is not an array.
func (p ProfileDocument) List(key string) []any {
	if v, ok := p.field(key).([]any); ok {
		return v
	}
	return []any{}
}

func (p ProfileDocument) field(key string) any {
	obj, ok := p.doc.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}
