package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidCoordinate(t *testing.T) {
	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{12.9505, 80.2060, true},
		{-33.9, 151.2, true},
		{0, 0, false},
		{91, 0, false},
		{-91, 0, false},
		{0, 181, false},
		{0, -181, false},
	}
	for _, c := range cases {
		got := IsValidCoordinate(c.lat, c.lon)
		if got != c.want {
			t.Errorf("IsValidCoordinate(%v, %v) = %v, want %v", c.lat, c.lon, got, c.want)
		}
	}
}

func TestIsValidWireDate(t *testing.T) {
	if _, ok := IsValidWireDate("07-03-2026"); !ok {
		t.Error("IsValidWireDate(07-03-2026) = false, want true")
	}
	for _, bad := range []string{"2026-03-07", "32-01-2026", "", "07/03/2026"} {
		if _, ok := IsValidWireDate(bad); ok {
			t.Errorf("IsValidWireDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidWireTime(t *testing.T) {
	valid := []string{"00:00:00", "09:05:59", "23:59:59"}
	invalid := []string{"24:00:00", "9:00:00", "09:60:00", "09:00", "", "09:00:00Z"}
	for _, s := range valid {
		if !IsValidWireTime(s) {
			t.Errorf("IsValidWireTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidWireTime(s) {
			t.Errorf("IsValidWireTime(%q) = true, want false", s)
		}
	}
}
