package ikey

import "testing"

func TestRangeContains(t *testing.T) {
	r := Range{Start: Position{Line: 2, Column: 5}, End: Position{Line: 4, Column: 10}}

	cases := []struct {
		name string
		pos  Position
		want bool
	}{
		{"before start line", Position{Line: 1, Column: 0}, false},
		{"before start column same line", Position{Line: 2, Column: 4}, false},
		{"at start", Position{Line: 2, Column: 5}, true},
		{"after start same line", Position{Line: 2, Column: 6}, true},
		{"middle line", Position{Line: 3, Column: 0}, true},
		{"end line before end column", Position{Line: 4, Column: 9}, true},
		{"at end", Position{Line: 4, Column: 10}, true},
		{"after end column same line", Position{Line: 4, Column: 11}, false},
		{"after end line", Position{Line: 5, Column: 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.pos); got != c.want {
				t.Errorf("Contains(%+v) = %v, want %v", c.pos, got, c.want)
			}
		})
	}
}

func TestRangeContainsSameLineRange(t *testing.T) {
	r := Range{Start: Position{Line: 3, Column: 2}, End: Position{Line: 3, Column: 8}}

	cases := []struct {
		name string
		pos  Position
		want bool
	}{
		{"before on same line", Position{Line: 3, Column: 1}, false},
		{"at start", Position{Line: 3, Column: 2}, true},
		{"inside", Position{Line: 3, Column: 5}, true},
		{"at end", Position{Line: 3, Column: 8}, true},
		{"after on same line", Position{Line: 3, Column: 9}, false},
		{"different line before", Position{Line: 2, Column: 5}, false},
		{"different line after", Position{Line: 4, Column: 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.pos); got != c.want {
				t.Errorf("Contains(%+v) = %v, want %v", c.pos, got, c.want)
			}
		})
	}
}

func TestInternRoundTrip(t *testing.T) {
	a := Intern("common.hello")
	b := Intern("common.hello")
	if a != b {
		t.Fatalf("expected interning the same string to return equal keys")
	}
	if a.Text() != "common.hello" {
		t.Fatalf("Text() = %q, want %q", a.Text(), "common.hello")
	}

	c := Intern("common.goodbye")
	if a == c {
		t.Fatalf("expected distinct strings to intern to distinct keys")
	}
}
