package service

import "testing"

func TestProgress(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		want      int
	}{
		{"no milestones", 0, 0, 0},
		{"none accepted", 7, 0, 0},
		{"one of seven", 7, 1, 14},
		{"two of seven rounds up", 7, 2, 29},
		{"three of seven", 7, 3, 43},
		{"half of four", 4, 2, 50},
		{"all accepted", 7, 7, 100},
		{"negative total treated as empty", -1, 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.total, tc.completed); got != tc.want {
				t.Fatalf("Progress(%d, %d) = %d, want %d", tc.total, tc.completed, got, tc.want)
			}
		})
	}
}
