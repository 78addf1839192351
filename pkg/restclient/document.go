package restclient

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Document is a parsed JSON payload navigable by path without a schema.
// Lookups on absent paths succeed and return a Document whose Exists
// method reports false; value accessors on such a Document return zero
// values. All methods are safe on a nil receiver.
type Document struct {
	result gjson.Result
}

// ParseDocument parses data as JSON. It returns ErrInvalidJSONBody when
// data is not well formed.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSONBody
	}

	return &Document{result: gjson.ParseBytes(data)}, nil
}

// Get returns the value at path. Paths use dot notation, for example
// "user.email" or "users.0.id" to index into arrays.
func (d *Document) Get(path string) *Document {
	if d == nil {
		return &Document{}
	}

	return &Document{result: d.result.Get(path)}
}

// Index returns the i-th element of an array value, or an absent
// Document when the value is not an array or the index is out of range.
func (d *Document) Index(i int) *Document {
	if d == nil || i < 0 || !d.result.IsArray() {
		return &Document{}
	}

	elements := d.result.Array()
	if i >= len(elements) {
		return &Document{}
	}

	return &Document{result: elements[i]}
}

// Exists reports whether the value is present in the document.
func (d *Document) Exists() bool {
	return d != nil && d.result.Exists()
}

// String returns the value as a string, or "" when absent.
func (d *Document) String() string {
	if d == nil {
		return ""
	}

	return d.result.String()
}

// Int returns the value as an int64, or 0 when absent.
func (d *Document) Int() int64 {
	if d == nil {
		return 0
	}

	return d.result.Int()
}

// Float returns the value as a float64, or 0 when absent.
func (d *Document) Float() float64 {
	if d == nil {
		return 0
	}

	return d.result.Float()
}

// Bool returns the value as a bool, or false when absent.
func (d *Document) Bool() bool {
	if d == nil {
		return false
	}

	return d.result.Bool()
}

// Len returns the number of elements for arrays, the number of keys for
// objects, and 0 for everything else.
func (d *Document) Len() int {
	switch {
	case d == nil:
		return 0
	case d.result.IsArray():
		return len(d.result.Array())
	case d.result.IsObject():
		return len(d.result.Map())
	default:
		return 0
	}
}

// Raw returns the underlying JSON text of the value.
func (d *Document) Raw() []byte {
	if d == nil {
		return nil
	}

	return []byte(d.result.Raw)
}

// Unmarshal decodes the value into v using encoding/json. It returns
// ErrValueNotPresent when the value does not exist.
func (d *Document) Unmarshal(v interface{}) error {
	if !d.Exists() {
		return ErrValueNotPresent
	}

	if err := json.Unmarshal([]byte(d.result.Raw), v); err != nil {
		return fmt.Errorf("unmarshaling document value: %w", err)
	}

	return nil
}
