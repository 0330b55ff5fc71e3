package baserow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IntField decodes a Baserow number field. Baserow sends numbers as JSON
// numbers, as decimal strings ("5", "5.00") or as null.
type IntField struct {
	Value int
	Valid bool
}

// NewIntField returns a set IntField.
func NewIntField(v int) IntField {
	return IntField{Value: v, Valid: true}
}

// Ptr returns nil for an unset field.
func (f IntField) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler
func (f *IntField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = IntField{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, ok := LeadingInt(s)
		*f = IntField{Value: v, Valid: ok}
		return nil
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("baserow: invalid number field %s: %w", data, err)
	}
	*f = IntField{Value: int(n), Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler
func (f IntField) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// LeadingInt parses the integer prefix of s: optional whitespace, an
// optional sign, then digits. "12.5" gives 12 and "abc" gives (0, false).
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
