package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// marshalDoc serializes a JSON document column (checklist, ISF list, tool
// config). Documents are encoded once on write and decoded once on scan; no
// code below the repository boundary sees raw JSON.
func marshalDoc(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding document column: %w", err)
	}
	return string(data), nil
}

func unmarshalDoc(data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decoding document column: %w", err)
	}
	return nil
}

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringOrEmpty unwraps a sql.NullString, treating NULL as "".
func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func parseTime(s string, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
