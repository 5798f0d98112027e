package game

import (
	"reflect"
	"testing"
)

func TestLetterPositions(t *testing.T) {
	tests := []struct {
		name   string
		target string
		letter rune
		want   []int
	}{
		{"single occurrence", "ABC", 'B', []int{1}},
		{"repeated letter", "ABBA", 'A', []int{0, 3}},
		{"absent letter", "ABC", 'Z', nil},
		{"space never matches", "A B", ' ', nil},
		{"positions are rune indexed", "سلام", 'ا', []int{2}},
		{"letter after space", "AB CD", 'C', []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterPositions(tt.target, tt.letter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LetterPositions(%q, %q) = %v, want %v", tt.target, string(tt.letter), got, tt.want)
			}
		})
	}
}
