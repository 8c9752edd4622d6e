package ui

import (
	"testing"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Archive", "Dracula", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Archive": "Dracula",
		"Dracula": "Slate",
		"Slate":   "Archive",
		"Unknown": "Archive",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != DefaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %s (fallback)", unknown.Name, DefaultThemeName)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := []string{
			th.Background, th.Surface, th.SurfaceAlt, th.FocusBg,
			th.SelectionBg, th.SelectionText, th.Border, th.BorderFocus,
			th.Text, th.Muted, th.Faint, th.Accent, th.Title, th.Link,
			th.Success, th.Warning, th.Danger,
		}
		for i, c := range colors {
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("%s color %d = %q, want #RRGGBB", name, i, c)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	if got := truncate("a  long\nline of text", 8); got != "a long …" {
		t.Fatalf("truncate = %q, want %q", got, "a long …")
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate width 0 = %q, want empty", got)
	}
}
