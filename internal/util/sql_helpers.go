package util

import (
	"database/sql"
	"strings"
)

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringPtrToNullString converts an optional string to sql.NullString, trimming it.
// A nil pointer is NULL. Oracle stores an empty string as NULL as well, so a patch
// that clears a column pairs this value with IsSet.
func StringPtrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*s), Valid: true}
}

// IsSet reports whether an optional value was supplied, as a NUMBER(1) flag for DECODE.
func IsSet[T any](p *T) int {
	return BoolToInt(p != nil)
}

// IntPtrToNullInt64 converts an optional int to sql.NullInt64
func IntPtrToNullInt64(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// Int64PtrToNullInt64 converts an optional int64 to sql.NullInt64
func Int64PtrToNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// BoolToInt maps a boolean onto a NUMBER(1) flag
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BoolPtrToNullInt64 maps an optional boolean onto a nullable NUMBER(1) flag
func BoolPtrToNullInt64(b *bool) sql.NullInt64 {
	if b == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(BoolToInt(*b)), Valid: true}
}
