package util

import "testing"

func TestDeref(t *testing.T) {
	if got := Deref[string](nil); got != "" {
		t.Fatalf("Deref(nil) = %q, want empty", got)
	}
	s := "tabata"
	if got := Deref(&s); got != "tabata" {
		t.Fatalf("Deref = %q", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{15, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}
	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}
