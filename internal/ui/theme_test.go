package ui

import "testing"

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != themes[0].Name {
		t.Fatalf("unknown theme resolved to %q, want %q", got.Name, themes[0].Name)
	}
	if got := GetTheme("Dusk"); got.Name != "Dusk" {
		t.Fatalf("GetTheme(Dusk) = %q", got.Name)
	}
}

func TestNextTheme_CyclesAndWraps(t *testing.T) {
	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		if seen[name] {
			t.Fatalf("theme %q repeated before the cycle closed", name)
		}
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycle ended on %q, want %q", name, themes[0].Name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}
