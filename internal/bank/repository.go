package bank

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query selects active bank rows. Empty Section or Difficulty means any.
type Query struct {
	TestType   string
	Track      string
	Section    string
	Difficulty string
	Limit      int
}

type Repository interface {
	Find(ctx context.Context, q Query) ([]BankQuestion, error)
	CreateBatch(ctx context.Context, rows []BankQuestion) (int64, error)
	RefreshStats(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Find(ctx context.Context, q Query) ([]BankQuestion, error) {
	var rows []BankQuestion
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("test_type = ?", q.TestType)
	if q.Track != "" {
		tx = tx.Where("track = ?", q.Track)
	}
	if q.Section != "" {
		tx = tx.Where("section = ?", q.Section)
	}
	if q.Difficulty != "" {
		tx = tx.Where("difficulty = ?", q.Difficulty)
	}
	if err := tx.Order("random()").Limit(q.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch inserts rows, skipping any whose hash already exists.
func (r *repository) CreateBatch(ctx context.Context, rows []BankQuestion) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "question_hash"}}, DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) RefreshStats(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT refresh_question_bank_stats()").Error
}
