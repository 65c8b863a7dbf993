package timeutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc1123z", "Fri, 01 Mar 2024 10:30:00 +0000", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Unparseable(t *testing.T) {
	if got := Parse("not a date"); !got.IsZero() {
		t.Errorf("Parse of garbage returned %v, want zero time", got)
	}
	if got := Parse(""); !got.IsZero() {
		t.Errorf("Parse of empty string returned %v, want zero time", got)
	}
}
