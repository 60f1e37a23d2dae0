package quizgen_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sharc777/allam-lambda/internal/bank"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sharc777/allam-lambda/internal/quizgen"
	"github.com/sharc777/allam-lambda/internal/settings"
)

var verbalWords = []string{
	"الشجاعة", "الكرم", "الصبر", "الحكمة", "الأمانة", "الوفاء", "الصدق", "التواضع",
	"الإخلاص", "العدل", "الرحمة", "الحلم",
}

func quant(i int) quizgen.Question {
	opts := []string{fmt.Sprint(2*i + 1), fmt.Sprint(2*i + 2), fmt.Sprint(2*i + 3), fmt.Sprint(2*i + 4)}
	return quizgen.Question{
		QuestionText:  fmt.Sprintf("ما ناتج %d + %d؟", i, i+1),
		Options:       opts,
		CorrectAnswer: opts[0],
		Explanation:   "نجمع العددين",
		Section:       quizgen.SectionQuantitative,
		SubjectTag:    "حساب",
		TopicTag:      "الجمع",
	}
}

func verbal(i int) quizgen.Question {
	return quizgen.Question{
		QuestionText:  "اختر مرادف كلمة " + verbalWords[i%len(verbalWords)],
		Options:       []string{"الجرأة", "الخوف", "التردد", "الكسل"},
		CorrectAnswer: "الجرأة",
		Explanation:   "المرادف هو الأقرب في المعنى",
		Section:       quizgen.SectionQuantitative,
		SubjectTag:    "لغة",
		TopicTag:      "المترادفات",
	}
}

func quants(from, n int) []quizgen.Question {
	out := make([]quizgen.Question, n)
	for i := range out {
		out[i] = quant(from + i)
	}
	return out
}

type genResult struct {
	questions []quizgen.Question
	err       error
}

type fakeGenerator struct {
	mu      sync.Mutex
	results []genResult
	calls   []quizgen.GenerateParams
}

func (g *fakeGenerator) Generate(ctx context.Context, p quizgen.GenerateParams) ([]quizgen.Question, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, p)
	if len(g.results) == 0 {
		return nil, nil
	}
	r := g.results[0]
	g.results = g.results[1:]
	out := make([]quizgen.Question, len(r.questions))
	copy(out, r.questions)
	return out, r.err
}

type fixedLoader struct {
	cfg settings.GenerationConfig
}

func (l fixedLoader) Load(context.Context) settings.GenerationConfig { return l.cfg }

type fakeKnowledge struct {
	topics []knowledge.ReferenceTopic
	lesson *knowledge.DailyContent
	err    error
}

func (k *fakeKnowledge) FindActiveTopics(ctx context.Context, testType, track string, limit int) ([]knowledge.ReferenceTopic, error) {
	return k.topics, k.err
}

func (k *fakeKnowledge) FindContentByID(ctx context.Context, id uuid.UUID) (*knowledge.DailyContent, error) {
	return k.lesson, nil
}

func (k *fakeKnowledge) FindContentByDay(ctx context.Context, testType string, day int) (*knowledge.DailyContent, error) {
	return k.lesson, nil
}

type fakeServed struct {
	mu     sync.Mutex
	hashes []string
	rows   []fingerprint.ServedQuestion
}

func (s *fakeServed) RecentHashes(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	return s.hashes, nil
}

func (s *fakeServed) Append(ctx context.Context, rows []fingerprint.ServedQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
	return nil
}

type fakeBank struct {
	mu       sync.Mutex
	rows     []bank.BankQuestion
	queries  []bank.Query
	inserted []bank.BankQuestion
	refresh  chan struct{}
}

func newFakeBank(rows ...bank.BankQuestion) *fakeBank {
	return &fakeBank{rows: rows, refresh: make(chan struct{}, 8)}
}

func (b *fakeBank) Find(ctx context.Context, q bank.Query) ([]bank.BankQuestion, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, q)
	out := make([]bank.BankQuestion, len(b.rows))
	copy(out, b.rows)
	return out, nil
}

func (b *fakeBank) CreateBatch(ctx context.Context, rows []bank.BankQuestion) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inserted = append(b.inserted, rows...)
	return int64(len(rows)), nil
}

func (b *fakeBank) RefreshStats(ctx context.Context) error {
	b.refresh <- struct{}{}
	return nil
}

func (b *fakeBank) findCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queries)
}

func bankRow(q quizgen.Question) bank.BankQuestion {
	return bank.BankQuestion{
		TestType:      "aptitude",
		Track:         "general",
		Section:       string(q.Section),
		Difficulty:    "medium",
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		SubjectTag:    q.SubjectTag,
		TopicTag:      q.TopicTag,
		IsActive:      true,
	}
}

type harness struct {
	gen     *fakeGenerator
	kb      *fakeKnowledge
	served  *fakeServed
	bank    *fakeBank
	service quizgen.Service
}

func newHarness(cfg settings.GenerationConfig) *harness {
	h := &harness{
		gen:    &fakeGenerator{},
		kb:     &fakeKnowledge{},
		served: &fakeServed{},
		bank:   newFakeBank(),
	}
	h.rebuild(cfg)
	return h
}

func (h *harness) rebuild(cfg settings.GenerationConfig) {
	assembler := quizgen.NewAssembler(fixedLoader{cfg: cfg}, h.kb, h.served)
	filters := quizgen.NewFilterPipeline(quizgen.NewKeywordClassifier())
	h.service = quizgen.NewService(assembler, h.gen, filters, h.bank, fingerprint.NewLogger(h.served))
}

func ptr[T any](v T) *T { return &v }
