package query

import (
	"strings"
	"testing"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{SortRecent, "created_at DESC, id DESC"},
		{SortAlpha, "title ASC, id ASC"},
		{SortDue, "(CASE WHEN due_at IS NULL THEN 1 ELSE 0 END) ASC, due_at ASC, id ASC"},
		{SortPriority, "(CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END) ASC, created_at DESC"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := ResolveSort(tc.key); got != tc.want {
				t.Errorf("ResolveSort(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestResolveSort_UnknownFallsBackToRecent(t *testing.T) {
	for _, key := range []string{"", "newest", "ALPHA", "id"} {
		if got := ResolveSort(key); got != ResolveSort(SortRecent) {
			t.Errorf("ResolveSort(%q) = %q, want the recent ordering", key, got)
		}
	}
}

func TestResolveSort_DuePlacesUnsetLast(t *testing.T) {
	// The NULL flag must sort ahead of the due date itself so every undated
	// task lands strictly after every dated one.
	order := ResolveSort(SortDue)
	nullFlag := strings.Index(order, "due_at IS NULL")
	dueAsc := strings.Index(order, "due_at ASC")
	if nullFlag == -1 || dueAsc == -1 || nullFlag > dueAsc {
		t.Fatalf("due ordering %q does not rank the NULL flag first", order)
	}
}

func TestResolveSort_PriorityRanksHighFirst(t *testing.T) {
	order := ResolveSort(SortPriority)
	high := strings.Index(order, "'high' THEN 1")
	medium := strings.Index(order, "'medium' THEN 2")
	if high == -1 || medium == -1 {
		t.Fatalf("priority ordering %q does not rank high before medium before low", order)
	}
	if !strings.Contains(order, "created_at DESC") {
		t.Fatalf("priority ordering %q misses the created_at tie-break", order)
	}
}
