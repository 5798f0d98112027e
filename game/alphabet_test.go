package game

import "testing"

func TestValidLetter(t *testing.T) {
	tests := []struct {
		name     string
		language string
		letter   string
		want     bool
	}{
		{"english lowercase", "en", "a", true},
		{"english uppercase", "en", "Z", true},
		{"english digit", "en", "5", false},
		{"english punctuation", "en", "-", false},
		{"english multi rune", "en", "ab", false},
		{"english empty", "en", "", false},
		{"persian letter", "fa", "م", true},
		{"persian folded yeh", "fa", "ي", true},
		{"persian folded kaf", "fa", "ك", true},
		{"persian space", "fa", " ", false},
		{"latin against persian alphabet", "fa", "a", false},
		{"persian against english alphabet", "en", "م", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidLetter(tt.language, tt.letter); got != tt.want {
				t.Errorf("ValidLetter(%q, %q) = %v, want %v", tt.language, tt.letter, got, tt.want)
			}
		})
	}
}

func TestPersianAlphabetCoversItself(t *testing.T) {
	for _, r := range PersianLetters {
		if !ValidRune("fa", r) {
			t.Errorf("alphabet letter %q not accepted by ValidRune", string(r))
		}
	}
}
