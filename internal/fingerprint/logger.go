package fingerprint

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Served is one delivered question, keyed by its text.
type Served struct {
	Text     string
	Snapshot any
}

type Logger interface {
	Record(ctx context.Context, userID uuid.UUID, dayNumber *int, served []Served)
}

type logger struct {
	repo Repository
}

func NewLogger(repo Repository) Logger {
	return &logger{repo: repo}
}

// Record appends served rows. Failures are logged and swallowed.
func (l *logger) Record(ctx context.Context, userID uuid.UUID, dayNumber *int, served []Served) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	rows := make([]ServedQuestion, 0, len(served))
	for _, s := range served {
		data, err := json.Marshal(s.Snapshot)
		if err != nil {
			log.WithError(err).Warn("skipping unserializable served question")
			continue
		}
		rows = append(rows, ServedQuestion{
			UserID:       userID,
			QuestionHash: Hash(s.Text),
			QuestionData: data,
			DayNumber:    dayNumber,
		})
	}

	if err := l.repo.Append(ctx, rows); err != nil {
		log.WithError(err).WithFields(logrus.Fields{"rows": len(rows)}).Warn("failed to record served questions")
	}
}
