package quizgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sharc777/allam-lambda/internal/settings"
)

type Prompt struct {
	System   string
	User     string
	Target   int
	Buffered int
}

// BuildPrompt renders the generation prompt. It does no I/O.
func BuildPrompt(cfg settings.GenerationConfig, topics []knowledge.ReferenceTopic, lesson *knowledge.DailyContent, req GenerationRequest) Prompt {
	target := TargetCount(cfg, req)
	buffered := int(math.Ceil(float64(target) * cfg.BufferMultiplier))
	if buffered < target {
		buffered = target
	}

	return Prompt{
		System:   SystemPrompt(cfg, topics, req),
		User:     UserPrompt(req, lesson, buffered),
		Target:   target,
		Buffered: buffered,
	}
}

// TargetCount resolves requested, section default and global default counts
// and clamps the result to the configured bounds.
func TargetCount(cfg settings.GenerationConfig, req GenerationRequest) int {
	n := cfg.DefaultQuestions
	if req.Mode == ModeInitialAssessment {
		n = cfg.AssessmentQuestions
	}
	if d, ok := cfg.SectionDefaults[string(req.Section)]; ok && req.Section != SectionNone && d > 0 {
		n = d
	}
	if req.RequestedCount != nil {
		n = *req.RequestedCount
	}

	if n < cfg.MinQuestions {
		n = cfg.MinQuestions
	}
	if n > cfg.MaxQuestions {
		n = cfg.MaxQuestions
	}
	return n
}

func templateKey(req GenerationRequest) string {
	if req.TestType == TestAchievement {
		if req.Track == TrackLiterary {
			return TemplateAchievementHumanities
		}
		return TemplateAchievementScience
	}
	switch req.Section {
	case SectionQuantitative:
		return TemplateQuantitative
	case SectionVerbal:
		return TemplateVerbal
	default:
		return TemplateAptitudeMixed
	}
}

func SystemPrompt(cfg settings.GenerationConfig, topics []knowledge.ReferenceTopic, req GenerationRequest) string {
	key := templateKey(req)
	tmpl := builtinTemplates[key]
	if override := strings.TrimSpace(cfg.PromptOverrides[key]); override != "" {
		tmpl = override
	}

	if len(topics) == 0 {
		return tmpl
	}

	var b strings.Builder
	b.WriteString("الموضوعات المسموح بها فقط (قائمة مغلقة):\n")
	for i, t := range topics {
		fmt.Fprintf(&b, "%d. %s", i+1, t.Title)
		if len(t.RelatedTopics) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(t.RelatedTopics, "، "))
		}
		b.WriteString("\n")
	}
	b.WriteString("يجب أن يكون كل سؤال من هذه القائمة فقط، ولا يجوز الخروج عنها، واكتب اسم الموضوع في الحقل topic_tag.\n\n")
	b.WriteString(tmpl)
	return b.String()
}

func UserPrompt(req GenerationRequest, lesson *knowledge.DailyContent, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "أنشئ %d سؤالاً من نوع الاختيار من متعدد.\n", count)
	fmt.Fprintf(&b, "مستوى الصعوبة: %s\n", difficultyLabels[req.Difficulty])

	switch req.Section {
	case SectionQuantitative:
		b.WriteString("القسم: كمي فقط.\n")
	case SectionVerbal:
		b.WriteString("القسم: لفظي فقط.\n")
	}

	if req.Mode == ModeInitialAssessment {
		b.WriteString("هذا اختبار تحديد مستوى: نوّع الموضوعات والصعوبة لقياس مستوى الطالب بدقة.\n")
	}

	if lesson != nil {
		fmt.Fprintf(&b, "\nالدرس: %s\n", lesson.Title)
		if len(lesson.Topics) > 0 {
			fmt.Fprintf(&b, "موضوعات الدرس: %s\n", strings.Join(lesson.Topics, "، "))
		}
		if text := strings.TrimSpace(lesson.ContentText); text != "" {
			fmt.Fprintf(&b, "محتوى الدرس:\n%s\n", text)
		}
		b.WriteString("يجب أن تقيس الأسئلة فهم هذا الدرس تحديداً.\n")
	}
	return b.String()
}
