package flashcards

import (
	"math"
	"strconv"
	"strings"
)

// FakeOptionCount is the number of wrong answers offered next to the correct
// one on a multiple-choice card.
const FakeOptionCount = 3

var (
	stringDecoys   = []string{"Unknown", "Not Available", "Placeholder", "Default Value", "Sample Text", "Test Data"}
	booleanFillers = []string{"maybe", "unknown"}
	numberFallback = []string{"42", "0", "100"}
)

// FakeOptions returns exactly three plausible but wrong answers for correct.
// The result never contains correct and never repeats an entry; both checks
// ignore case and surrounding whitespace, matching how answers are graded.
func FakeOptions(correct string, propertyType PropertyType) []string {
	var candidates []string
	switch propertyType {
	case PropertyTypeNumber:
		candidates = numberCandidates(correct)
	case PropertyTypeBoolean:
		negated := "true"
		if isTrueToken(normalize(correct)) {
			negated = "false"
		}
		candidates = append([]string{negated}, booleanFillers...)
	default:
		candidates = stringDecoys
	}

	return pickDistinct(correct, candidates, FakeOptionCount)
}

// numberCandidates yields v+1, v-1, v*2 followed by wider offsets, which are
// only consumed when the first three collide (v=0 gives v*2 == v).
func numberCandidates(correct string) []string {
	v, err := strconv.ParseFloat(strings.TrimSpace(correct), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return numberFallback
	}

	out := []string{formatNumber(v + 1), formatNumber(v - 1), formatNumber(v * 2)}
	for step := 2.0; step <= 4; step++ {
		out = append(out, formatNumber(v+step), formatNumber(v-step))
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pickDistinct takes the first n candidates that differ from correct and from
// each other, then pads with "Option N" labels.
func pickDistinct(correct string, candidates []string, n int) []string {
	seen := map[string]bool{normalize(correct): true}
	picked := make([]string, 0, n)

	for _, c := range candidates {
		if len(picked) == n {
			break
		}
		key := normalize(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, c)
	}

	for next := len(picked) + 1; len(picked) < n; next++ {
		label := "Option " + strconv.Itoa(next)
		key := normalize(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, label)
	}

	return picked
}
