package quizgen

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"github.com/sharc777/allam-lambda/internal/bank"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sirupsen/logrus"
)

const (
	StrategyBankExact   = "bank_exact"
	StrategyBankSection = "bank_section"
	StrategyBankGeneral = "bank_general"
	StrategyAITopUp     = "ai_topup"
)

// Strategy contributes zero or more unfiltered candidates towards a shortfall.
type Strategy struct {
	Name   string
	Supply func(ctx context.Context, need int) ([]Question, error)
}

type recoveryResult struct {
	questions []Question
	usedBank  bool
}

// recoverShortfall runs passes over strategies until have reaches target or
// maxAttempts passes are spent.
func (s *service) recoverShortfall(ctx context.Context, b *Batch, req GenerationRequest, strategies []Strategy, have []Question, target, maxAttempts int) (recoveryResult, error) {
	log := config.WithContext(ctx)
	res := recoveryResult{questions: have}

	texts := make(map[string]struct{}, len(have))
	for _, q := range have {
		texts[fingerprint.Normalize(q.QuestionText)] = struct{}{}
	}

	for attempt := 1; attempt <= maxAttempts && len(res.questions) < target; attempt++ {
		for _, st := range strategies {
			need := target - len(res.questions)
			if need <= 0 {
				break
			}

			candidates, err := st.Supply(ctx, need)
			if err != nil {
				if errors.Is(err, llm.ErrRateLimited) || errors.Is(err, llm.ErrQuotaExhausted) {
					return res, err
				}
				log.WithError(err).WithField("strategy", st.Name).Warn("recovery strategy failed")
				continue
			}

			if st.Name != StrategyAITopUp {
				candidates = lo.Filter(candidates, func(q Question, _ int) bool {
					key := fingerprint.Normalize(q.QuestionText)
					if _, dup := texts[key]; dup {
						return false
					}
					texts[key] = struct{}{}
					return true
				})
			}

			accepted := s.filters.Apply(ctx, b, req, candidates)
			if len(accepted) > need {
				accepted = accepted[:need]
			}
			for _, q := range accepted {
				texts[fingerprint.Normalize(q.QuestionText)] = struct{}{}
			}
			if len(accepted) > 0 && st.Name != StrategyAITopUp {
				res.usedBank = true
			}
			res.questions = append(res.questions, accepted...)

			log.WithFields(logrus.Fields{
				"attempt":  attempt,
				"strategy": st.Name,
				"offered":  len(candidates),
				"accepted": len(accepted),
				"have":     len(res.questions),
				"target":   target,
			}).Info("recovery pass")
		}
	}

	if len(res.questions) < target {
		return res, &InsufficientError{Valid: len(res.questions), Target: target}
	}
	return res, nil
}

func (s *service) strategies(req GenerationRequest, lesson *knowledge.DailyContent, topUp GenerateParams) []Strategy {
	section := req.Section
	fromBank := func(q bank.Query) func(ctx context.Context, need int) ([]Question, error) {
		return func(ctx context.Context, need int) ([]Question, error) {
			q.Limit = need * 2
			rows, err := s.bank.Find(ctx, q)
			if err != nil {
				return nil, err
			}
			return lo.Map(rows, func(r bank.BankQuestion, _ int) Question { return fromBankRow(r) }), nil
		}
	}

	list := []Strategy{
		{Name: StrategyBankExact, Supply: fromBank(bank.Query{
			TestType: string(req.TestType), Track: req.Track, Section: string(section), Difficulty: bankDifficulty(req.Difficulty),
		})},
		{Name: StrategyBankSection, Supply: fromBank(bank.Query{
			TestType: string(req.TestType), Track: req.Track, Section: string(section),
		})},
	}
	if req.TestType == TestAptitude {
		list = append(list, Strategy{Name: StrategyBankGeneral, Supply: fromBank(bank.Query{
			TestType: string(TestAptitude), Section: string(section),
		})})
	}
	list = append(list, Strategy{Name: StrategyAITopUp, Supply: func(ctx context.Context, need int) ([]Question, error) {
		p := topUp
		p.User = UserPrompt(req, lesson, need)
		qs, err := s.generator.Generate(ctx, p)
		for i := range qs {
			qs[i].Source = SourceTopUp
		}
		return qs, err
	}})
	return list
}

func bankDifficulty(d string) string {
	if d == DifficultyMixed {
		return ""
	}
	return d
}

func fromBankRow(r bank.BankQuestion) Question {
	return Question{
		QuestionText:  r.QuestionText,
		Options:       []string(r.Options),
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Section:       Section(r.Section),
		SubjectTag:    r.SubjectTag,
		TopicTag:      r.TopicTag,
		Difficulty:    r.Difficulty,
		Source:        SourceBank,
	}
}
