package quizgen

import (
	"context"
	"fmt"

	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sharc777/allam-lambda/internal/settings"
)

type Assembly struct {
	Config   settings.GenerationConfig
	Topics   []knowledge.ReferenceTopic
	Excluded fingerprint.Set
	Lesson   *knowledge.DailyContent
}

type Assembler interface {
	Assemble(ctx context.Context, req GenerationRequest) (*Assembly, error)
}

type assembler struct {
	settings  settings.Loader
	knowledge knowledge.Repository
	served    fingerprint.Repository
}

func NewAssembler(loader settings.Loader, kb knowledge.Repository, served fingerprint.Repository) Assembler {
	return &assembler{settings: loader, knowledge: kb, served: served}
}

// Assemble only fails when a requested lesson cannot be resolved. Missing
// configuration, topics or history degrade to defaults and empty sets.
func (a *assembler) Assemble(ctx context.Context, req GenerationRequest) (*Assembly, error) {
	log := config.WithContext(ctx)
	cfg := a.settings.Load(ctx)

	out := &Assembly{Config: cfg, Excluded: fingerprint.NewSet()}

	if req.Mode == ModeLesson {
		lesson, err := a.lesson(ctx, req)
		if err != nil {
			return nil, err
		}
		out.Lesson = lesson
	}

	topics, err := a.knowledge.FindActiveTopics(ctx, string(req.TestType), req.Track, cfg.KnowledgeLimit)
	if err != nil {
		log.WithError(err).Warn("knowledge base unavailable, generating without reference topics")
		topics = nil
	}
	if req.Section != SectionNone {
		topics = knowledge.FilterBySection(topics, string(req.Section))
	}
	out.Topics = topics

	hashes, err := a.served.RecentHashes(ctx, req.UserID, cfg.HistoryLimit)
	if err != nil {
		log.WithError(err).Warn("served question history unavailable")
	}
	out.Excluded = fingerprint.NewSet(hashes...)

	return out, nil
}

func (a *assembler) lesson(ctx context.Context, req GenerationRequest) (*knowledge.DailyContent, error) {
	var (
		lesson *knowledge.DailyContent
		err    error
	)
	if req.ContentID != nil {
		lesson, err = a.knowledge.FindContentByID(ctx, *req.ContentID)
	} else {
		lesson, err = a.knowledge.FindContentByDay(ctx, string(req.TestType), *req.DayNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}
