package quizgen

import (
	"context"
	"errors"
	"time"

	"github.com/sharc777/allam-lambda/internal/bank"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/settings"
	"github.com/sirupsen/logrus"
)

type FillJob struct {
	TestType   TestType
	Track      string
	Section    Section
	Difficulty string
	Count      int
}

type FillReport struct {
	Calls     int
	Generated int
	Accepted  int
	Inserted  int64
}

// DefaultFillJobs covers every test, track, section and difficulty combination.
func DefaultFillJobs(count int) []FillJob {
	difficulties := []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
	var jobs []FillJob
	for _, section := range []Section{SectionQuantitative, SectionVerbal} {
		for _, d := range difficulties {
			jobs = append(jobs, FillJob{TestType: TestAptitude, Track: TrackGeneral, Section: section, Difficulty: d, Count: count})
		}
	}
	for _, track := range []string{TrackScientific, TrackLiterary} {
		for _, d := range difficulties {
			jobs = append(jobs, FillJob{TestType: TestAchievement, Track: track, Difficulty: d, Count: count})
		}
	}
	return jobs
}

// BankFiller generates questions sequentially and stores the survivors in
// the question bank.
type BankFiller struct {
	generator Generator
	filters   *FilterPipeline
	bank      bank.Repository
	settings  settings.Loader
	delay     time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewBankFiller(generator Generator, filters *FilterPipeline, bankRepo bank.Repository, loader settings.Loader, delay time.Duration) *BankFiller {
	return &BankFiller{
		generator: generator,
		filters:   filters,
		bank:      bankRepo,
		settings:  loader,
		delay:     delay,
		sleep:     sleepContext,
	}
}

// Fill stops early on exhausted credits or a cancelled context. A rate
// limit costs one extra delay and the job is skipped.
func (f *BankFiller) Fill(ctx context.Context, jobs []FillJob) (FillReport, error) {
	log := config.WithContext(ctx)
	cfg := f.settings.Load(ctx)
	batch := NewBatch(nil)
	var report FillReport

	for i, job := range jobs {
		if i > 0 {
			if err := f.sleep(ctx, f.delay); err != nil {
				return report, err
			}
		}

		req := GenerationRequest{
			Mode:       ModePractice,
			TestType:   job.TestType,
			Track:      job.Track,
			Section:    job.Section,
			Difficulty: job.Difficulty,
		}
		jlog := log.WithFields(logrus.Fields{
			"test_type":  job.TestType,
			"track":      job.Track,
			"section":    job.Section,
			"difficulty": job.Difficulty,
		})

		report.Calls++
		raw, err := f.generator.Generate(ctx, GenerateParams{
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			System:      SystemPrompt(cfg, nil, req),
			User:        UserPrompt(req, nil, job.Count),
		})
		switch {
		case errors.Is(err, llm.ErrQuotaExhausted):
			jlog.WithError(err).Error("credits exhausted, stopping bank fill")
			return report, err
		case errors.Is(err, llm.ErrRateLimited):
			jlog.WithError(err).Warn("rate limited, backing off")
			if err := f.sleep(ctx, f.delay); err != nil {
				return report, err
			}
			continue
		case err != nil:
			jlog.WithError(err).Warn("generation failed, skipping job")
			continue
		}

		accepted := f.filters.Apply(ctx, batch, req, raw)
		report.Generated += len(raw)
		report.Accepted += len(accepted)

		rows := make([]bank.BankQuestion, len(accepted))
		for j, q := range accepted {
			rows[j] = toBankRow(job, q)
		}
		n, err := f.bank.CreateBatch(ctx, rows)
		if err != nil {
			jlog.WithError(err).Error("failed to store bank questions")
			continue
		}
		report.Inserted += n
		jlog.WithFields(logrus.Fields{"accepted": len(accepted), "inserted": n}).Info("bank job done")
	}

	if report.Inserted > 0 {
		if err := f.bank.RefreshStats(ctx); err != nil {
			log.WithError(err).Warn("refresh question bank stats failed")
		}
	}
	return report, nil
}

func toBankRow(job FillJob, q Question) bank.BankQuestion {
	return bank.BankQuestion{
		TestType:      string(job.TestType),
		Track:         job.Track,
		Section:       string(q.Section),
		Difficulty:    job.Difficulty,
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		SubjectTag:    q.SubjectTag,
		TopicTag:      q.TopicTag,
		QuestionHash:  q.Fingerprint,
		IsActive:      true,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
