package matcher

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"exact literal matches", "Thumbs.db", "Thumbs.db", true},
		{"literal is whole-name", "Thumbs.db", "Thumbs.database", false},
		{"literal is case sensitive", "Thumbs.db", "thumbs.db", false},
		{"dotfile literal", ".DS_Store", ".DS_Store", true},
		{"suffix wildcard", "*.part", "movie.mkv.part", true},
		{"suffix wildcard empty star", "*.part", ".part", true},
		{"suffix wildcard rejects other suffix", "*.part", "movie.partial", false},
		{"suffix wildcard rejects bare suffix text", "*.part", "part", false},
		{"bundle wildcard", "*.musiclibrary", "Music Library.musiclibrary", true},
		{"screenshot pattern", "Screen Shot *.png", "Screen Shot 2024-01-01 at 1.00.00.png", true},
		{"screenshot pattern empty middle", "Screen Shot *.png", "Screen Shot .png", true},
		{"screenshot pattern needs prefix", "Screen Shot *.png", "My Screen Shot 1.png", false},
		{"screenshot pattern needs suffix", "Screen Shot *.png", "Screen Shot 1.jpg", false},
		{"lone wildcard", "*", "anything at all", true},
		{"lone wildcard matches empty", "*", "", true},
		{"double wildcard", "a*b*c", "aXbYc", true},
		{"double wildcard reuses nothing", "a*b*c", "abc", true},
		{"double wildcard missing middle", "a*b*c", "aXYc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.input); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchAnyFirstDeclaredWins(t *testing.T) {
	patterns := []string{"*.png", "Screenshot *.png", "Screenshot *"}

	pattern, ok := MatchAny(patterns, "Screenshot 2024.png")
	if !ok {
		t.Fatal("expected a match")
	}
	if pattern != "*.png" {
		t.Errorf("expected first declared pattern to win, got %q", pattern)
	}

	if _, ok := MatchAny(patterns, "notes.txt"); ok {
		t.Error("expected no match for notes.txt")
	}
}

func TestMatchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("pattern without wildcard matches exactly itself", prop.ForAll(
		func(name, extra string) bool {
			if !Match(name, name) {
				t.Logf("pattern %q failed to match itself", name)
				return false
			}
			if extra != "" && Match(name, name+extra) {
				t.Logf("pattern %q matched longer name %q", name, name+extra)
				return false
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("lone wildcard matches any name", prop.ForAll(
		func(name string) bool {
			return Match("*", name)
		},
		gen.AnyString(),
	))

	properties.Property("prefix wildcard matches any tail", prop.ForAll(
		func(prefix, tail string) bool {
			return Match(prefix+"*", prefix+tail)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("suffix wildcard matches any head", prop.ForAll(
		func(head, suffix string) bool {
			return Match("*"+suffix, head+suffix)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("interleaved literals match with arbitrary fillers", prop.ForAll(
		func(a, b, c, x, y string) bool {
			pattern := a + "*" + b + "*" + c
			name := a + x + b + y + c
			if !Match(pattern, name) {
				t.Logf("Match(%q, %q) = false", pattern, name)
				return false
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("matching is case sensitive", prop.ForAll(
		func(name string) bool {
			upper := strings.ToUpper(name)
			lower := strings.ToLower(name)
			if upper == lower {
				return true
			}
			return !Match(upper, lower)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
