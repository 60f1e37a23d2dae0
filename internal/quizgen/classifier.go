package quizgen

import (
	"regexp"
	"strings"
	"unicode"
)

type SectionClassifier interface {
	Classify(text string) Section
}

var (
	digitPattern  = regexp.MustCompile(`[0-9٠-٩۰-۹]`)
	symbolPattern = regexp.MustCompile(`[%+=×÷√²³]`)

	// Only unambiguous arithmetic vocabulary. Words such as قيمة, كسر, حجم
	// or ربع are common in verbal items and are left to the digit check.
	quantKeywords = map[string]struct{}{
		"احسب": {}, "أحسب": {}, "أوجد": {}, "اوجد": {}, "ناتج": {}, "معادلة": {},
		"مساحة": {}, "مكعب": {}, "مثلث": {}, "مستطيل": {}, "مئوية": {},
		"حسابي": {}, "حسابية": {},
	}
)

// KeywordClassifier tags text as quantitative when it carries digits, math
// symbols or arithmetic vocabulary, and verbal otherwise.
type KeywordClassifier struct{}

func NewKeywordClassifier() SectionClassifier {
	return KeywordClassifier{}
}

func (KeywordClassifier) Classify(text string) Section {
	if digitPattern.MatchString(text) || symbolPattern.MatchString(text) {
		return SectionQuantitative
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r)
	})
	for _, w := range words {
		for _, stem := range stems(w) {
			if _, ok := quantKeywords[stem]; ok {
				return SectionQuantitative
			}
		}
	}
	return SectionVerbal
}

// stems returns w with the common attached prefixes removed: a conjunction
// (و، ف), a preposition (ب، ك، ل) and the article ال.
func stems(w string) []string {
	out := []string{w}
	for _, conj := range []string{"و", "ف"} {
		if s, ok := strings.CutPrefix(w, conj); ok {
			out = append(out, s)
		}
	}
	n := len(out)
	for _, s := range out[:n] {
		if rest, ok := strings.CutPrefix(s, "لل"); ok {
			out = append(out, rest)
			continue
		}
		for _, prep := range []string{"ب", "ك", "ل"} {
			if rest, ok := strings.CutPrefix(s, prep); ok {
				out = append(out, rest)
			}
		}
	}
	for _, s := range out {
		if rest, ok := strings.CutPrefix(s, "ال"); ok {
			out = append(out, rest)
		}
	}
	return out
}
