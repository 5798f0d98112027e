package game

import (
	"strings"

	"github.com/guess-tone/tone_api/model"
)

// Arabic variants that are visually identical to a Persian letter are folded
// to one canonical codepoint so guesses match regardless of which form the
// admin typed.
var variantFolder = strings.NewReplacer(
	"ي", "ی", // ي -> ی
	"ك", "ک", // ك -> ک
)

// Normalize canonicalizes a target string or guess for comparison: trims,
// collapses whitespace runs to a single space, folds letter variants, and for
// English uppercases the whole string. Pure and deterministic; reveal arrays
// are always derived from normalized text.
func Normalize(text, language string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = variantFolder.Replace(text)
	if language == model.LanguageEnglish {
		text = strings.ToUpper(text)
	}
	return text
}

// NormalizeLetter applies the same folding and casing rules to a single
// guessed letter.
func NormalizeLetter(letter, language string) string {
	letter = variantFolder.Replace(strings.TrimSpace(letter))
	if language == model.LanguageEnglish {
		letter = strings.ToUpper(letter)
	}
	return letter
}
