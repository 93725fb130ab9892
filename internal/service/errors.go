package service

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to its validation message. Validation
// never partially saves: a non-empty FieldErrors aborts the whole
// operation.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
