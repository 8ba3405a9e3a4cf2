package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDueDate accepts an RFC 3339 timestamp or a plain date. Values without
// a zone are read as UTC.
func ParseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, validationError("due date is required")
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, validationError("invalid due date %q", raw)
}

// dedupeIDs drops repeated ids, keeping first occurrences in order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// reconcileCategories computes the delta turning current into desired
func reconcileCategories(current, desired []uuid.UUID) (attach, detach []uuid.UUID) {
	have := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	want := make(map[uuid.UUID]bool, len(desired))
	for _, id := range desired {
		want[id] = true
		if !have[id] {
			attach = append(attach, id)
		}
	}
	for _, id := range current {
		if !want[id] {
			detach = append(detach, id)
		}
	}
	return attach, detach
}
