package game

import "github.com/guess-tone/tone_api/model"

// PersianLetters is the guessable Persian alphabet, including the folded
// canonical forms only (ي and ك are folded to ی and ک before lookup).
var PersianLetters = []rune{
	'آ', 'ا', 'ب', 'پ', 'ت', 'ث', 'ج', 'چ', 'ح', 'خ',
	'د', 'ذ', 'ر', 'ز', 'ژ', 'س', 'ش', 'ص', 'ض', 'ط',
	'ظ', 'ع', 'غ', 'ف', 'ق', 'ک', 'گ', 'ل', 'م', 'ن',
	'و', 'ه', 'ی',
}

var persianSet = make(map[rune]bool, len(PersianLetters))

func init() {
	for _, r := range PersianLetters {
		persianSet[r] = true
	}
}

// ValidRune reports whether r is a guessable letter of the alphabet selected
// by language. r must already be normalized (folded, uppercased for Latin).
func ValidRune(language string, r rune) bool {
	if language == model.LanguageEnglish {
		return r >= 'A' && r <= 'Z'
	}
	return persianSet[r]
}

// ValidLetter reports whether letter is exactly one guessable rune of the
// language's alphabet after normalization.
func ValidLetter(language, letter string) bool {
	runes := []rune(NormalizeLetter(letter, language))
	if len(runes) != 1 {
		return false
	}
	return ValidRune(language, runes[0])
}
