package game

// LetterPositions returns every rune position in target equal to letter.
// Spaces are never matchable. Both arguments must already be normalized.
// The result is empty when the letter occurs nowhere and holds every
// occurrence when it repeats.
func LetterPositions(target string, letter rune) []int {
	var positions []int
	for i, r := range []rune(target) {
		if r == ' ' {
			continue
		}
		if r == letter {
			positions = append(positions, i)
		}
	}
	return positions
}
