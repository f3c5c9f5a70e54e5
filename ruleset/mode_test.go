package ruleset

import "testing"

func TestMode(t *testing.T) {
	cases := []struct {
		mode  Mode
		name  string
		valid bool
	}{
		{Standard, "osu", true},
		{Taiko, "taiko", true},
		{Catch, "fruits", true},
		{Mania, "mania", true},
		{Mode(7), "mode(7)", false},
	}
	for _, c := range cases {
		if got := c.mode.String(); got != c.name {
			t.Errorf("String() = %q, want %q", got, c.name)
		}
		if c.mode.Valid() != c.valid {
			t.Errorf("%s: Valid() = %v", c.name, !c.valid)
		}
	}
}
