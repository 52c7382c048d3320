package main

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00.00"},
		{59.994, "0:59.99"},
		{59.999, "1:00.00"},
		{60, "1:00.00"},
		{125.25, "2:05.25"},
		{480, "8:00.00"},
		{-3, "0:00.00"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
