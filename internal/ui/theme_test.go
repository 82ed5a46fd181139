package ui

import (
	"strings"
	"testing"

	"github.com/five82/armview/internal/format"
	"github.com/five82/armview/internal/prefs"
)

func TestSchemeTable(t *testing.T) {
	ids := SchemeIDs()
	if len(ids) != 14 {
		t.Fatalf("SchemeIDs() len = %d, want 14", len(ids))
	}
	if ids[0] != "blue" {
		t.Fatalf("default scheme = %q, want blue", ids[0])
	}
	seen := map[string]bool{}
	for _, s := range colorSchemes {
		if seen[s.ID] {
			t.Fatalf("duplicate scheme id %q", s.ID)
		}
		seen[s.ID] = true
		tk := s.Tokens
		for name, v := range map[string]string{
			"Primary": tk.Primary, "PrimaryText": tk.PrimaryText, "PrimaryTextDark": tk.PrimaryTextDark,
			"PrimaryBorder": tk.PrimaryBorder, "OnPrimary": tk.OnPrimary, "Page": tk.Page,
			"PageDark": tk.PageDark, "Surface": tk.Surface, "SurfaceDark": tk.SurfaceDark,
		} {
			if !strings.HasPrefix(v, "#") || len(v) != 7 {
				t.Fatalf("%s.%s = %q, want #rrggbb", s.ID, name, v)
			}
		}
	}
}

func TestNextSchemeCycles(t *testing.T) {
	ids := SchemeIDs()
	if got := NextScheme("blue"); got != ids[1] {
		t.Fatalf("NextScheme(blue) = %q, want %q", got, ids[1])
	}
	if got := NextScheme(ids[len(ids)-1]); got != ids[0] {
		t.Fatalf("NextScheme(last) = %q, want %q", got, ids[0])
	}
	if got := NextScheme("missing"); got != ids[0] {
		t.Fatalf("NextScheme(missing) = %q, want %q", got, ids[0])
	}
}

func TestResolveTheme(t *testing.T) {
	blue := GetScheme("blue")

	dark := ResolveTheme("blue", prefs.ModeDark)
	if dark.Mode != prefs.ModeDark || !dark.Dark() {
		t.Fatalf("dark mode = %q", dark.Mode)
	}
	if dark.Background != blue.Tokens.PageDark || dark.Surface != blue.Tokens.SurfaceDark || dark.Accent != blue.Tokens.PrimaryTextDark {
		t.Fatalf("dark theme = %+v, want dark tokens", dark)
	}

	light := ResolveTheme("blue", prefs.ModeLight)
	if light.Mode != prefs.ModeLight || light.Background != blue.Tokens.Page || light.Accent != blue.Tokens.PrimaryText {
		t.Fatalf("light theme = %+v, want light tokens", light)
	}
	if light.Text == dark.Text {
		t.Fatalf("light and dark share text color %q", light.Text)
	}

	if got := ResolveTheme("blue", "").Mode; got != prefs.ModeDark {
		t.Fatalf("empty mode resolved to %q, want dark", got)
	}
	if got := ResolveTheme("nope", prefs.ModeLight).SchemeID; got != "blue" {
		t.Fatalf("unknown scheme resolved to %q, want blue", got)
	}
}

func TestResolveTheme_ForceDarkIgnoresLight(t *testing.T) {
	for _, s := range colorSchemes {
		if !s.ForceDark {
			continue
		}
		th := ResolveTheme(s.ID, prefs.ModeLight)
		if th.Mode != prefs.ModeDark || th.Background != s.Tokens.PageDark {
			t.Fatalf("%s resolved %q/%q, want forced dark", s.ID, th.Mode, th.Background)
		}
	}
}

func TestStatusColors(t *testing.T) {
	th := ResolveTheme("forest", prefs.ModeDark)
	if th.StatusColors[format.CategoryFailed] != th.Danger {
		t.Fatalf("failed color = %q, want danger %q", th.StatusColors[format.CategoryFailed], th.Danger)
	}
	if th.StatusColors[format.CategoryActive] != th.Accent {
		t.Fatalf("active color = %q, want accent %q", th.StatusColors[format.CategoryActive], th.Accent)
	}
	for _, c := range []format.Category{
		format.CategoryActive, format.CategoryTranscoding, format.CategorySuccess,
		format.CategoryFailed, format.CategoryWaiting, format.CategoryUnknown,
	} {
		if th.StatusColors[c] == "" {
			t.Fatalf("category %q has no color", c)
		}
	}
}

func TestToggleMode(t *testing.T) {
	if got := ToggleMode(prefs.ModeDark); got != prefs.ModeLight {
		t.Fatalf("ToggleMode(dark) = %q", got)
	}
	if got := ToggleMode(prefs.ModeLight); got != prefs.ModeDark {
		t.Fatalf("ToggleMode(light) = %q", got)
	}
	if got := ToggleMode(""); got != prefs.ModeLight {
		t.Fatalf("ToggleMode(empty) = %q, want light", got)
	}
}
