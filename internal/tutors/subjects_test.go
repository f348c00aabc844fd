package tutors

import (
	"reflect"
	"testing"
)

// TestNormalizeSubject verifies casing and whitespace canonicalization.
func TestNormalizeSubject(t *testing.T) {
	cases := map[string]string{
		"math":             "Math",
		"MATH":             "Math",
		"  physics  ":      "Physics",
		"computer science": "Computer Science",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizeSubject(in); got != want {
			t.Errorf("NormalizeSubject(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestNormalizeSubjects verifies deduping and order preservation.
func TestNormalizeSubjects(t *testing.T) {
	got := NormalizeSubjects([]string{"math", "Physics", "MATH", " ", "chemistry"})
	want := []string{"Math", "Physics", "Chemistry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeSubjects = %v, want %v", got, want)
	}
}
