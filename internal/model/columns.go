package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// MuscleGroups is stored as a comma-joined TEXT column.
type MuscleGroups []MuscleGroup

func (m MuscleGroups) Value() (driver.Value, error) {
	parts := make([]string, len(m))
	for i, g := range m {
		parts[i] = string(g)
	}
	return strings.Join(parts, ","), nil
}

func (m *MuscleGroups) Scan(src any) error {
	s, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan muscle groups: %w", err)
	}
	*m = MuscleGroups{}
	for _, part := range splitColumn(s) {
		*m = append(*m, MuscleGroup(part))
	}
	return nil
}

func (m MuscleGroups) Contains(g MuscleGroup) bool {
	for _, v := range m {
		if v == g {
			return true
		}
	}
	return false
}

// DietaryRestrictions is stored as a comma-joined TEXT column.
type DietaryRestrictions []DietaryRestriction

func (d DietaryRestrictions) Value() (driver.Value, error) {
	parts := make([]string, len(d))
	for i, r := range d {
		parts[i] = string(r)
	}
	return strings.Join(parts, ","), nil
}

func (d *DietaryRestrictions) Scan(src any) error {
	s, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan dietary restrictions: %w", err)
	}
	*d = DietaryRestrictions{}
	for _, part := range splitColumn(s) {
		*d = append(*d, DietaryRestriction(part))
	}
	return nil
}

// IsNone reports whether the set is exactly {none}.
func (d DietaryRestrictions) IsNone() bool {
	return len(d) == 1 && d[0] == DietNone
}

// SplitDay is one entry of a weekly split: which muscle groups a session targets.
type SplitDay struct {
	Day          int          `json:"day"`
	MuscleGroups MuscleGroups `json:"muscle_groups"`
}

// SplitDetails is stored as JSON TEXT; NULL scans to nil.
type SplitDetails []SplitDay

func (s SplitDetails) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal([]SplitDay(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SplitDetails) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	text, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan split details: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		*s = nil
		return nil
	}
	var days []SplitDay
	err = json.Unmarshal([]byte(text), &days)
	if err != nil {
		return fmt.Errorf("scan split details: %w", err)
	}
	*s = days
	return nil
}

func textColumn(src any) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported column type %T", src)
	}
}

func splitColumn(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
