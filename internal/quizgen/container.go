package quizgen

import (
	"github.com/sharc777/allam-lambda/internal/bank"
	"github.com/sharc777/allam-lambda/internal/fingerprint"
	"github.com/sharc777/allam-lambda/internal/knowledge"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/settings"
	"gorm.io/gorm"
)

type QuizGenContainer struct {
	Handler   *Handler
	Service   Service
	Generator Generator
	Filters   *FilterPipeline
	Settings  settings.Loader
	Bank      bank.Repository
}

func NewQuizGenContainer(db *gorm.DB, provider llm.Provider) *QuizGenContainer {
	loader := settings.NewLoader(settings.NewRepository(db))
	kbRepo := knowledge.NewRepository(db)
	servedRepo := fingerprint.NewRepository(db)
	bankRepo := bank.NewRepository(db)

	generator := NewGenerator(provider)
	filters := NewFilterPipeline(NewKeywordClassifier())
	assembler := NewAssembler(loader, kbRepo, servedRepo)
	service := NewService(assembler, generator, filters, bankRepo, fingerprint.NewLogger(servedRepo))

	return &QuizGenContainer{
		Handler:   NewHandler(service),
		Service:   service,
		Generator: generator,
		Filters:   filters,
		Settings:  loader,
		Bank:      bankRepo,
	}
}
