package knowledge

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindActiveTopics(ctx context.Context, testType, track string, limit int) ([]ReferenceTopic, error)
	FindContentByID(ctx context.Context, id uuid.UUID) (*DailyContent, error)
	FindContentByDay(ctx context.Context, testType string, day int) (*DailyContent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveTopics(ctx context.Context, testType, track string, limit int) ([]ReferenceTopic, error) {
	var topics []ReferenceTopic
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("test_type = ?", testType)
	if track != "" {
		q = q.Where("track IN ?", []string{track, "general"})
	}
	if err := q.Order("updated_at DESC").Limit(limit).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *repository) FindContentByID(ctx context.Context, id uuid.UUID) (*DailyContent, error) {
	var content DailyContent
	if err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *repository) FindContentByDay(ctx context.Context, testType string, day int) (*DailyContent, error) {
	var content DailyContent
	err := r.db.WithContext(ctx).
		Where("day_number = ? AND test_type = ?", day, testType).
		Order("created_at DESC").
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}
