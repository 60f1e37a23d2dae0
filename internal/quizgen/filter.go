package quizgen

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sirupsen/logrus"
)

const (
	dropExcluded       = "served_before"
	dropDuplicate      = "duplicate_in_batch"
	dropSection        = "section_mismatch"
	dropOptionCount    = "option_count"
	dropOptionsRepeat  = "options_not_distinct"
	dropAnswerMissing  = "answer_not_in_options"
	dropEmptyText      = "empty_text"
	dropEmptyExplainer = "empty_explanation"
	dropTopic          = "topic_mismatch"
)

// Batch tracks fingerprints across the initial generation and every
// recovery pass of a single request.
type Batch struct {
	excluded fingerprint.Set
	seen     fingerprint.Set
}

func NewBatch(excluded fingerprint.Set) *Batch {
	if excluded == nil {
		excluded = fingerprint.NewSet()
	}
	return &Batch{excluded: excluded, seen: fingerprint.NewSet()}
}

type FilterPipeline struct {
	classifier SectionClassifier
}

func NewFilterPipeline(classifier SectionClassifier) *FilterPipeline {
	return &FilterPipeline{classifier: classifier}
}

// Apply runs fingerprinting, section repair, section conformance and
// structural checks. Order is preserved.
func (f *FilterPipeline) Apply(ctx context.Context, b *Batch, req GenerationRequest, candidates []Question) []Question {
	log := config.WithContext(ctx)
	out := make([]Question, 0, len(candidates))

	for _, q := range candidates {
		q.Fingerprint = fingerprint.Hash(q.QuestionText)
		if b.excluded.Has(q.Fingerprint) {
			logDrop(log, q, dropExcluded)
			continue
		}
		if b.seen.Has(q.Fingerprint) {
			logDrop(log, q, dropDuplicate)
			continue
		}

		f.repairSection(&q, req)
		if q.Difficulty == "" {
			q.Difficulty = req.Difficulty
		}

		if req.Section != SectionNone {
			if got := f.classifier.Classify(q.QuestionText); got != req.Section {
				logDrop(log, q, dropSection)
				continue
			}
			q.Section = req.Section
		}

		if reason := structuralDefect(q); reason != "" {
			logDrop(log, q, reason)
			continue
		}

		b.seen.Add(q.Fingerprint)
		out = append(out, q)
	}
	return out
}

// ApplyTopics drops questions that match none of the reference topics.
func (f *FilterPipeline) ApplyTopics(ctx context.Context, topics []knowledge.ReferenceTopic, questions []Question) []Question {
	if len(topics) == 0 {
		return questions
	}
	log := config.WithContext(ctx)
	return lo.Filter(questions, func(q Question, _ int) bool {
		if knowledge.MatchesAny(topics, q.TopicTag, q.SubjectTag, q.QuestionText) {
			return true
		}
		logDrop(log, q, dropTopic)
		return false
	})
}

func (f *FilterPipeline) repairSection(q *Question, req GenerationRequest) {
	if q.Section != SectionNone {
		return
	}
	if req.TestType == TestAchievement {
		q.Section = SectionAchievement
		return
	}
	q.Section = f.classifier.Classify(q.QuestionText)
}

func structuralDefect(q Question) string {
	if strings.TrimSpace(q.QuestionText) == "" {
		return dropEmptyText
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return dropEmptyExplainer
	}
	if len(q.Options) != 4 {
		return dropOptionCount
	}
	trimmed := lo.Map(q.Options, func(o string, _ int) string { return strings.TrimSpace(o) })
	if lo.Contains(trimmed, "") || len(lo.Uniq(trimmed)) != 4 {
		return dropOptionsRepeat
	}
	if !lo.Contains(q.Options, q.CorrectAnswer) {
		return dropAnswerMissing
	}
	return ""
}

func logDrop(log *logrus.Entry, q Question, reason string) {
	log.WithFields(logrus.Fields{
		"reason":      reason,
		"fingerprint": q.Fingerprint,
		"section":     q.Section,
		"source":      q.Source,
	}).Debug("dropping candidate question")
}
