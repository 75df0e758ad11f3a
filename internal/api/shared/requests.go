package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(v)
}

// ParseID parses a path parameter as a positive int64. Failures wrap
// domain.ErrInvalidID.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// Fields is a decoded JSON object whose members are inspected one at a time,
// so handlers can tell an absent member from a null or mistyped one.
type Fields map[string]json.RawMessage

// DecodeFields decodes the request body as a JSON object.
func DecodeFields(r *http.Request) (Fields, error) {
	var fields Fields
	if err := DecodeJSON(r, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		// The body was the literal null.
		return nil, errors.New("request body must be a JSON object")
	}
	return fields, nil
}

// Has reports whether the member is present, even if null.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// IsSet reports whether the member is present and not null.
func (f Fields) IsSet(name string) bool {
	raw, ok := f[name]
	return ok && !isNull(raw)
}

// Text returns the member as a string; ok is false if it is not a JSON string.
func (f Fields) Text(name string) (value string, ok bool) {
	raw, present := f[name]
	if !present || isNull(raw) {
		return "", false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// Number returns the member as a float64; ok is false unless it is a JSON number.
func (f Fields) Number(name string) (value float64, ok bool) {
	raw, present := f[name]
	if !present || isNull(raw) {
		return 0, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	return value, true
}

// maxExactInt is the largest integer a JSON number is guaranteed to carry exactly.
const maxExactInt = 1 << 53

// Int returns the member as an int64; ok is false unless it is an integral
// JSON number.
func (f Fields) Int(name string) (value int64, ok bool) {
	n, ok := f.Number(name)
	if !ok || n != math.Trunc(n) || math.Abs(n) > maxExactInt {
		return 0, false
	}
	return int64(n), true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
