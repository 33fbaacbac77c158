package forms

import (
	"reflect"
	"testing"
	"time"

	"github.com/taskdesk/backend/domain"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Priority
	}{
		{"low", domain.PriorityLow},
		{"medium", domain.PriorityMedium},
		{"high", domain.PriorityHigh},
		{" HIGH ", domain.PriorityHigh},
		{"", domain.PriorityMedium},
		{"urgent", domain.PriorityMedium},
		{"0", domain.PriorityMedium},
	}
	for _, tc := range tests {
		if got := ParsePriority(tc.raw); got != tc.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	got := ParseDueDate(" 2024-01-15 ")
	if got == nil {
		t.Fatal("ParseDueDate(valid) = nil")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDueDate() = %v, want %v", got, want)
	}

	for _, raw := range []string{"", "  ", "15/01/2024", "2024-13-40", "soon"} {
		if got := ParseDueDate(raw); got != nil {
			t.Errorf("ParseDueDate(%q) = %v, want nil", raw, got)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{" , ,, ", ""},
		{"pessoal, urgente", "pessoal,urgente"},
		{"  a ,b,  c  ", "a,b,c"},
		// duplicates are kept, order preserved
		{"work,home,work", "work,home,work"},
	}
	for _, tc := range tests {
		if got := NormalizeTags(tc.raw); got != tc.want {
			t.Errorf("NormalizeTags(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []int64
	}{
		{"nil input", nil, nil},
		{"single", []string{"7"}, []int64{7}},
		{"comma-joined with duplicates and junk", []string{"2", "2,3", "x"}, []int64{2, 3}},
		{"negative zero and malformed dropped", []string{"-1", "0", "abc", "4"}, []int64{4}},
		{"whitespace tolerated", []string{" 5 , 6 "}, []int64{5, 6}},
		{"first occurrence order kept", []string{"9,1", "1,9,2"}, []int64{9, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIDs(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseIDs(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"12", 12},
		{" 12 ", 12},
		{"", 0},
		{"0", 0},
		{"-3", 0},
		{"12.5", 0},
		{"abc", 0},
	}
	for _, tc := range tests {
		if got := ParseID(tc.raw); got != tc.want {
			t.Errorf("ParseID(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
