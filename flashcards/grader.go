package flashcards

import "strings"

// Verdict is the outcome of grading one answer.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	// VerdictUngradeable is returned for a true/false answer that is neither
	// a recognised "true" nor a recognised "false" token. It counts as wrong.
	VerdictUngradeable Verdict = "ungradeable"
)

// Correct reports whether the verdict should be recorded as a correct answer.
func (v Verdict) Correct() bool {
	return v == VerdictCorrect
}

var (
	trueTokens  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "1": true}
	falseTokens = map[string]bool{"false": true, "f": true, "no": true, "n": true, "0": true}
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isTrueToken(s string) bool  { return trueTokens[s] }
func isFalseToken(s string) bool { return falseTokens[s] }

// Grade compares a free-text answer against the card's correct answer.
//
// Both sides are trimmed and compared case-insensitively. True/false cards
// accept the usual variations (t, yes, y, 1 / f, no, n, 0).
func Grade(cardType CardType, correctAnswer, userAnswer string) Verdict {
	correct := normalize(correctAnswer)
	user := normalize(userAnswer)

	if cardType == CardTypeTrueFalse {
		correctIsTrue := isTrueToken(correct)
		switch {
		case isTrueToken(user):
			return verdictOf(correctIsTrue)
		case isFalseToken(user):
			return verdictOf(!correctIsTrue)
		default:
			return VerdictUngradeable
		}
	}

	return verdictOf(user == correct)
}

// IsCorrect is Grade reduced to a boolean.
func IsCorrect(cardType CardType, correctAnswer, userAnswer string) bool {
	return Grade(cardType, correctAnswer, userAnswer).Correct()
}

func verdictOf(ok bool) Verdict {
	if ok {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
