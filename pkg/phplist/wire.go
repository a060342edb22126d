package phplist

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ToWireName converts a camelCase attribute name to the snake_case
// convention used by the API wire format. A separator is inserted before
// each upper-case letter that directly follows a lower-case letter, then
// the whole name is lower-cased. Single-word names pass through unchanged.
func ToWireName(name string) string {
	var builder strings.Builder

	builder.Grow(len(name) + 4)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			builder.WriteByte('_')
		}

		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}

// Payload is an insertion-ordered wire payload built from a request
// object's fields. Keys are translated to the wire convention by
// ToWireName when set. Marshaling preserves the order fields were set,
// matching the declaration order of the request object.
type Payload struct {
	keys   []string
	values map[string]any
}

// NewPayload creates an empty payload.
func NewPayload() *Payload {
	return &Payload{values: map[string]any{}}
}

// Set adds a field under the wire translation of name. Explicit zero
// values (false, 0, "") are included; callers skip absent fields by not
// calling Set for them. Setting the same field twice overwrites in place.
func (p *Payload) Set(name string, value any) *Payload {
	key := ToWireName(name)
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = value

	return p
}

// SetOpt adds a field only when the optional value is present. Typed nil
// pointers are treated as absent; present pointers are dereferenced so
// explicit false/0/"" survive into the payload.
func (p *Payload) SetOpt(name string, value any) *Payload {
	switch v := value.(type) {
	case nil:
		return p
	case *string:
		if v == nil {
			return p
		}

		return p.Set(name, *v)
	case *int:
		if v == nil {
			return p
		}

		return p.Set(name, *v)
	case *int64:
		if v == nil {
			return p
		}

		return p.Set(name, *v)
	case *float64:
		if v == nil {
			return p
		}

		return p.Set(name, *v)
	case *bool:
		if v == nil {
			return p
		}

		return p.Set(name, *v)
	case *time.Time:
		if v == nil {
			return p
		}

		return p.Set(name, v.Format(time.RFC3339))
	case []string:
		if v == nil {
			return p
		}

		return p.Set(name, v)
	case *Payload:
		if v == nil {
			return p
		}

		return p.Set(name, v)
	default:
		return p.Set(name, value)
	}
}

// Keys returns the wire names of the fields set, in insertion order.
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Len returns the number of fields set.
func (p *Payload) Len() int {
	return len(p.keys)
}

// Get returns the value stored under the wire translation of name.
func (p *Payload) Get(name string) (any, bool) {
	value, ok := p.values[ToWireName(name)]

	return value, ok
}

// Map returns the payload as a plain map. Nested payloads are flattened
// to maps as well. Key order is lost; use MarshalJSON when order matters.
func (p *Payload) Map() map[string]any {
	result := make(map[string]any, len(p.values))

	for key, value := range p.values {
		if nested, ok := value.(*Payload); ok {
			result[key] = nested.Map()
		} else {
			result[key] = value
		}
	}

	return result
}

// MarshalJSON encodes the payload as a JSON object whose keys appear in
// insertion order.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}

		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Object is a decoded JSON object used as hydration input. The accessor
// methods implement the coercion rules shared by all entity constructors:
// required scalars default to the type's zero value, optional scalars
// degrade to nil, booleans follow wire truthiness, and dates parse from
// ISO-8601-like strings.
type Object map[string]any

// AsObject converts a decoded JSON value to an Object if it is a
// non-empty JSON object.
func AsObject(value any) (Object, bool) {
	switch v := value.(type) {
	case Object:
		if len(v) == 0 {
			return nil, false
		}

		return v, true
	case map[string]any:
		if len(v) == 0 {
			return nil, false
		}

		return Object(v), true
	default:
		return nil, false
	}
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	value, ok := o[key]

	return ok && value != nil
}

// Int coerces the value under key to an integer, defaulting to 0.
func (o Object) Int(key string) int {
	return coerceInt(o[key])
}

// OptInt coerces the value under key to an integer, or nil when the key
// is absent or null.
func (o Object) OptInt(key string) *int {
	if !o.Has(key) {
		return nil
	}

	value := coerceInt(o[key])

	return &value
}

// String coerces the value under key to a string, defaulting to "".
func (o Object) String(key string) string {
	return coerceString(o[key])
}

// OptString coerces the value under key to a string, or nil when the
// key is absent or null.
func (o Object) OptString(key string) *string {
	if !o.Has(key) {
		return nil
	}

	value := coerceString(o[key])

	return &value
}

// Bool applies wire truthiness to the value under key: any non-zero,
// non-empty, non-false value is true. Absent keys are false.
func (o Object) Bool(key string) bool {
	return coerceBool(o[key])
}

// OptBool is Bool with absent/null mapped to nil rather than false.
func (o Object) OptBool(key string) *bool {
	if !o.Has(key) {
		return nil
	}

	value := coerceBool(o[key])

	return &value
}

// Float coerces the value under key to a float, defaulting to 0.
func (o Object) Float(key string) float64 {
	return coerceFloat(o[key])
}

// OptFloat coerces the value under key to a float, or nil when absent.
func (o Object) OptFloat(key string) *float64 {
	if !o.Has(key) {
		return nil
	}

	value := coerceFloat(o[key])

	return &value
}

// Time parses the value under key as a timestamp, returning the zero
// time when the key is absent, empty, or unparseable.
func (o Object) Time(key string) time.Time {
	parsed, _ := ParseTime(coerceString(o[key]))

	return parsed
}

// OptTime parses the value under key as a timestamp, or nil when the
// key is absent, empty, or unparseable.
func (o Object) OptTime(key string) *time.Time {
	if !o.Has(key) {
		return nil
	}

	parsed, err := ParseTime(coerceString(o[key]))
	if err != nil {
		return nil
	}

	return &parsed
}

// RequiredTime parses a domain-mandatory timestamp. A missing, empty, or
// unparseable value is a construction error wrapping ErrMissingField.
func (o Object) RequiredTime(key string) (time.Time, error) {
	raw := coerceString(o[key])
	if raw == "" {
		return time.Time{}, newMissingFieldError(key)
	}

	parsed, err := ParseTime(raw)
	if err != nil {
		return time.Time{}, newMissingFieldError(key)
	}

	return parsed, nil
}

// Object returns the nested object under key, or nil when the value is
// not a non-empty object.
func (o Object) Object(key string) Object {
	nested, ok := AsObject(o[key])
	if !ok {
		return nil
	}

	return nested
}

// RequiredObject returns the nested object under key, or a construction
// error wrapping ErrMissingField when it is absent or not an object.
func (o Object) RequiredObject(key string) (Object, error) {
	nested, ok := AsObject(o[key])
	if !ok {
		return nil, newMissingFieldError(key)
	}

	return nested, nil
}

// List returns the array under key, or nil when the value is not an
// array.
func (o Object) List(key string) []any {
	items, ok := o[key].([]any)
	if !ok {
		return nil
	}

	return items
}

// StringSlice coerces the array under key to strings, or nil when the
// value is not an array.
func (o Object) StringSlice(key string) []string {
	items := o.List(key)
	if items == nil {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, coerceString(item))
	}

	return result
}

// timeLayouts are tried in order when parsing wire timestamps. Values
// without a zone are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an ISO-8601-like wire timestamp into a timezone-aware
// value.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	var lastErr error

	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return parsed, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}

func coerceInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0
		}

		return int(parsed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}

		return parsed
	case bool:
		if v {
			return 1
		}

		return 0
	default:
		return 0
	}
}

func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}

		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; print integral values without
		// a fractional part so IDs survive string coercion.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		parsed, err := v.Float64()

		return err == nil && parsed != 0
	case string:
		lower := strings.ToLower(strings.TrimSpace(v))

		return lower != "" && lower != "0" && lower != "false"
	default:
		return value != nil
	}
}
