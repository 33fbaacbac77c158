// Package forms centralizes coercion of raw form input into domain values.
// Every function is total: bad input falls back to a documented default
// instead of producing an error.
package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/taskdesk/backend/domain"
)

// ParsePriority coerces a raw priority value. Unrecognized or empty input
// becomes PriorityMedium.
func ParsePriority(raw string) domain.Priority {
	p := domain.Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return domain.PriorityMedium
	}
	return p
}

// ParseDueDate parses an HTML date input (YYYY-MM-DD) as midnight local
// time. Empty or malformed input yields nil.
func ParseDueDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// NormalizeTags rewrites a comma-separated tag list: entries trimmed, empty
// entries dropped, order preserved, duplicates kept. Returns "" for an
// empty set (stored as NULL, never an empty string).
func NormalizeTags(raw string) string {
	var out []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return strings.Join(out, ",")
}

// ParseIDs flattens raw identifier tokens (repeated form fields, possibly
// comma-joined) into a de-duplicated list of positive integer ids, in first
// occurrence order. Malformed tokens are dropped silently.
func ParseIDs(raw []string) []int64 {
	var (
		ids  []int64
		seen = make(map[int64]struct{})
	)
	for _, field := range raw {
		for _, token := range strings.Split(field, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			id, err := strconv.ParseInt(token, 10, 64)
			if err != nil || id <= 0 {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseID parses a single id token; zero means missing or malformed.
func ParseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
