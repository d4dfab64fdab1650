package core

import "testing"

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("ColorDefault should have no code, got %q", ColorDefault.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown colors should have no code")
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("ColorOrange = %q, want 208", ColorOrange.ANSI())
	}
	for _, c := range Colors() {
		if c.ANSI() == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
}
