package quizgen

import (
	"context"
	"fmt"

	"github.com/sharc777/allam-lambda/internal/bank"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req GenerationRequest) (*GenerateQuizResponse, error)
}

type service struct {
	assembler Assembler
	generator Generator
	filters   *FilterPipeline
	bank      bank.Repository
	served    fingerprint.Logger
}

func NewService(assembler Assembler, generator Generator, filters *FilterPipeline, bankRepo bank.Repository, served fingerprint.Logger) Service {
	return &service{
		assembler: assembler,
		generator: generator,
		filters:   filters,
		bank:      bankRepo,
		served:    served,
	}
}

func (s *service) GenerateQuiz(ctx context.Context, req GenerationRequest) (*GenerateQuizResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":   req.UserID,
		"mode":      req.Mode,
		"test_type": req.TestType,
		"section":   req.Section,
	})

	asm, err := s.assembler.Assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	cfg := asm.Config
	prompt := BuildPrompt(cfg, asm.Topics, asm.Lesson, req)

	params := GenerateParams{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		System:      prompt.System,
		User:        prompt.User,
	}
	raw, err := s.generator.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	batch := NewBatch(asm.Excluded)
	valid := s.filters.Apply(ctx, batch, req, raw)
	if req.Mode == ModePractice {
		valid = s.filters.ApplyTopics(ctx, asm.Topics, valid)
	}
	log.WithFields(logrus.Fields{
		"target":   prompt.Target,
		"buffered": prompt.Buffered,
		"raw":      len(raw),
		"valid":    len(valid),
	}).Info("initial generation filtered")

	if len(valid) < prompt.Target {
		topUp := params
		topUp.Model = cfg.TopUpModel
		res, err := s.recoverShortfall(ctx, batch, req, s.strategies(req, asm.Lesson, topUp), valid, prompt.Target, cfg.MaxAttempts)
		if res.usedBank {
			s.refreshBankStats(ctx)
		}
		if err != nil {
			log.WithError(err).Warn("shortfall recovery failed")
			return nil, fmt.Errorf("recover shortfall: %w", err)
		}
		valid = res.questions
	}

	if len(valid) > prompt.Target {
		valid = valid[:prompt.Target]
	}

	served := make([]fingerprint.Served, len(valid))
	for i, q := range valid {
		served[i] = fingerprint.Served{Text: q.QuestionText, Snapshot: q}
	}
	s.served.Record(ctx, req.UserID, req.DayNumber, served)

	resp := &GenerateQuizResponse{
		Questions: valid,
		TestType:  req.TestType,
		Track:     req.Track,
	}
	if asm.Lesson != nil {
		resp.ContentTitle = asm.Lesson.Title
	}
	return resp, nil
}

func (s *service) refreshBankStats(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.bank.RefreshStats(ctx); err != nil {
			config.WithContext(ctx).WithError(err).Warn("refresh question bank stats failed")
		}
	}()
}
