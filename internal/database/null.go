package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// NullInt converts an optional id into a value database/sql stores as NULL
// when unset.
func NullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// NullString is the string counterpart of NullInt.
func NullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// IntPtr converts a scanned nullable integer back to an optional id.
func IntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// StringPtr converts a scanned nullable string back to an optional value.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// ParseIntList reads the text produced by array_to_string(col, ',') back into
// ids. Empty or NULL input yields an empty slice.
func ParseIntList(s sql.NullString) ([]int, error) {
	out := make([]int, 0)
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s.String, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse id list %q: %w", s.String, err)
		}
		out = append(out, n)
	}
	return out, nil
}
