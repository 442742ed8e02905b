// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// BaseModel carries the identity and timestamps every table shares. Rows are
// hard-deleted so foreign key cascades run in the database.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IDSlice is a JSONB column holding a set of record ids (e.g. preferred courts).
type IDSlice []uint

func (s IDSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]uint(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSONB column into the slice.
func (s *IDSlice) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*s = IDSlice{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("IDSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Normalize sorts and deduplicates the ids; order carries no meaning.
func (s IDSlice) Normalize() IDSlice {
	out := make(IDSlice, 0, len(s))
	seen := make(map[uint]struct{}, len(s))
	for _, id := range s {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
