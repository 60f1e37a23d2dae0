package fingerprint

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	RecentHashes(ctx context.Context, userID uuid.UUID, limit int) ([]string, error)
	Append(ctx context.Context, rows []ServedQuestion) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RecentHashes(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&ServedQuestion{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("question_hash", &hashes).Error
	return hashes, err
}

func (r *repository) Append(ctx context.Context, rows []ServedQuestion) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}
