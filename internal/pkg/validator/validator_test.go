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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-05", "2024-02-29", "1999-12-31"}
	invalid := []string{"2026-13-01", "2026-01-32", "05-01-2026", "2026/01/05", "", "today"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-01-05T09:00:00Z",
		"2026-01-05T09:00:00+07:00",
		"2026-01-05T09:00:00.123456789Z",
	}
	invalid := []string{"2026-01-05", "2026-01-05 09:00:00", "1736067600", "", "yesterday"}
	for _, dt := range valid {
		if _, ok := IsValidDateTime(dt); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", dt)
		}
	}
	for _, dt := range invalid {
		if _, ok := IsValidDateTime(dt); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", dt)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "user_id", Message: "user_id is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["user_id"] != "user_id is required" {
		t.Errorf("ToMap()[user_id] = %q", m["user_id"])
	}
}
