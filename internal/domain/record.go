package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Well-known ClientRecord field names.
const (
	FieldCLI    = "cli"
	FieldTCLI   = "tcli"
	FieldAgency = "age"
)

// ClientRecord is a read-only snapshot of one bkcli row: field name to scalar value.
// Values are strings, numbers, booleans, dates or nil.
type ClientRecord map[string]any

// CLI returns the client identifier, or "" when absent or not a scalar.
func (r ClientRecord) CLI() string {
	s, _, _ := r.String(FieldCLI)
	return s
}

// Type returns the tcli discriminant of the record.
func (r ClientRecord) Type() ClientType {
	s, _, _ := r.String(FieldTCLI)
	return ClientType(strings.TrimSpace(s))
}

// Value returns the raw value stored under field.
func (r ClientRecord) Value(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// HasIdentity reports whether both cli and tcli are present and non-blank.
func (r ClientRecord) HasIdentity() bool {
	return strings.TrimSpace(r.CLI()) != "" && strings.TrimSpace(string(r.Type())) != ""
}

// String renders the value of field as a string. present is false when the field is
// missing or nil. Nested objects and arrays yield ErrUnsupportedValue.
func (r ClientRecord) String(field string) (s string, present bool, err error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false, nil
	}
	s, err = scalarString(v)
	if err != nil {
		return "", true, fmt.Errorf("field %q: %w", field, err)
	}
	return s, true, nil
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	case time.Time:
		return t.Format(time.DateOnly), nil
	case *time.Time:
		if t == nil {
			return "", nil
		}
		return t.Format(time.DateOnly), nil
	default:
		return "", ErrUnsupportedValue
	}
}

// DecodeClientRecord unmarshals a JSON object into a ClientRecord, keeping numbers exact.
func DecodeClientRecord(raw json.RawMessage) (ClientRecord, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var rec ClientRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding client record: %w", err)
	}
	if rec == nil {
		return nil, ErrMissingRecord
	}
	return rec, nil
}
