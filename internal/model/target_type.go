package model

import "fmt"

// TargetType tags the external entity a review is written about.
type TargetType string

const (
	TargetCourse TargetType = "COURSE"
)

// TargetTypes is the closed set of reviewable target types.
var TargetTypes = []TargetType{TargetCourse}

// ParseTargetType validates a request-supplied tag. Tags are case-sensitive.
func ParseTargetType(s string) (TargetType, error) {
	for _, t := range TargetTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported target type %q", s)
}
