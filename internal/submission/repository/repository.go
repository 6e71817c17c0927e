// Package repository provides data access layer for DQ submission module.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/swimdq/internal/submission/model"
)

// Repository defines the interface for DQ submission data access operations.
type Repository interface {
	// Create stores a submission, assigning its id and submission timestamp.
	Create(ctx context.Context, sub *model.DQSubmission) (*model.DQSubmission, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new DQ submission repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create stores a submission in a single insert.
func (r *repository) Create(ctx context.Context, sub *model.DQSubmission) (*model.DQSubmission, error) {
	sub.ID = uuid.NewString()
	sub.SubmittedAt = time.Now().UTC()
	if sub.Infractions == nil {
		sub.Infractions = []string{}
	}

	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		r.logger.Errorw("Create database error", "meet_id", sub.MeetID, "error", err)
		return nil, err
	}

	r.logger.Debugw("Create completed", "submission_id", sub.ID, "meet_id", sub.MeetID)
	return sub, nil
}
