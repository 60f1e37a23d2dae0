package knowledge

import (
	"strings"

	"github.com/samber/lo"
)

var sectionKeywords = map[string][]string{
	"quantitative": {"كمي", "الكمي", "رياضيات", "حساب", "جبر", "هندسة", "إحصاء", "math", "quantitative"},
	"verbal":       {"لفظي", "اللفظي", "لغة", "قراءة", "استيعاب", "تناظر", "مفردات", "إكمال", "verbal"},
}

// FilterBySection narrows topics to those mentioning the section. An empty
// result falls back to the unfiltered set.
func FilterBySection(topics []ReferenceTopic, section string) []ReferenceTopic {
	keywords, ok := sectionKeywords[section]
	if !ok || len(topics) == 0 {
		return topics
	}

	filtered := lo.Filter(topics, func(t ReferenceTopic, _ int) bool {
		haystack := strings.ToLower(t.Title + " " + t.Content + " " + strings.Join(t.RelatedTopics, " "))
		return lo.SomeBy(keywords, func(k string) bool {
			return strings.Contains(haystack, strings.ToLower(k))
		})
	})
	if len(filtered) == 0 {
		return topics
	}
	return filtered
}

// Labels returns the title and related tags of a topic.
func (t ReferenceTopic) Labels() []string {
	labels := make([]string, 0, 1+len(t.RelatedTopics))
	if s := strings.TrimSpace(t.Title); s != "" {
		labels = append(labels, s)
	}
	for _, tag := range t.RelatedTopics {
		if s := strings.TrimSpace(tag); s != "" {
			labels = append(labels, s)
		}
	}
	return labels
}

// FuzzyMatch is a case-insensitive substring match in either direction.
func FuzzyMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesAny reports whether any of values fuzzily matches a label of any topic.
func MatchesAny(topics []ReferenceTopic, values ...string) bool {
	for _, t := range topics {
		for _, label := range t.Labels() {
			for _, v := range values {
				if FuzzyMatch(v, label) {
					return true
				}
			}
		}
	}
	return false
}
