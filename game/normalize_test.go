package game

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language string
		want     string
	}{
		{
			name:     "collapses internal whitespace",
			text:     "  ebi   setare ",
			language: "fa",
			want:     "ebi setare",
		},
		{
			name:     "folds arabic yeh to persian yeh",
			text:     "علي",
			language: "fa",
			want:     "علی",
		},
		{
			name:     "folds arabic kaf to persian kaf",
			text:     "كتاب",
			language: "fa",
			want:     "کتاب",
		},
		{
			name:     "uppercases english",
			text:     "Bohemian  Rhapsody",
			language: "en",
			want:     "BOHEMIAN RHAPSODY",
		},
		{
			name:     "persian keeps latin case",
			text:     "Mix Case",
			language: "fa",
			want:     "Mix Case",
		},
		{
			name:     "empty input",
			text:     "   ",
			language: "en",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.text, tt.language); got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.text, tt.language, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []struct {
		text     string
		language string
	}{
		{"  Shadmehr   Aghili ", "en"},
		{"علي كريمي", "fa"},
	}

	for _, in := range inputs {
		once := Normalize(in.text, in.language)
		twice := Normalize(once, in.language)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in.text, once, twice)
		}
	}
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		letter   string
		language string
		want     string
	}{
		{"a", "en", "A"},
		{" b ", "en", "B"},
		{"ي", "fa", "ی"},
		{"ك", "fa", "ک"},
		{"م", "fa", "م"},
	}

	for _, tt := range tests {
		if got := NormalizeLetter(tt.letter, tt.language); got != tt.want {
			t.Errorf("NormalizeLetter(%q, %q) = %q, want %q", tt.letter, tt.language, got, tt.want)
		}
	}
}
