// Package repository provides data access layer for meet module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/swimdq/internal/meet/model"
)

// Repository defines the interface for meet data access operations.
type Repository interface {
	// Create stores a new meet, assigning its id and creation timestamp.
	Create(ctx context.Context, meet *model.Meet) (*model.Meet, error)

	// GetByID finds meet by id.
	GetByID(ctx context.Context, meetID string) (*model.Meet, error)

	// List returns every meet in storage order.
	List(ctx context.Context) ([]model.Meet, error)

	// UpdateStatus sets the status of a meet and returns the stored record.
	UpdateStatus(ctx context.Context, meetID string, status model.Status) (*model.Meet, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new meet repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create stores a new meet in a single insert.
func (r *repository) Create(ctx context.Context, meet *model.Meet) (*model.Meet, error) {
	now := time.Now().UTC()
	meet.ID = uuid.NewString()
	meet.CreatedAt = &now

	if err := r.db.WithContext(ctx).Create(meet).Error; err != nil {
		r.logger.Errorw("Create database error", "name", meet.Name, "error", err)
		return nil, err
	}

	r.logger.Debugw("Create completed", "meet_id", meet.ID)
	return meet, nil
}

// GetByID finds meet by id.
func (r *repository) GetByID(ctx context.Context, meetID string) (*model.Meet, error) {
	r.logger.Debugw("GetByID called", "meet_id", meetID)

	var meet model.Meet
	err := r.db.WithContext(ctx).
		Where("id = ?", meetID).
		First(&meet).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID meet not found", "meet_id", meetID)
			return nil, model.ErrMeetNotFound
		}
		r.logger.Errorw("GetByID database error", "meet_id", meetID, "error", err)
		return nil, err
	}

	return &meet, nil
}

// List returns every meet. Ordering is left to the caller.
func (r *repository) List(ctx context.Context) ([]model.Meet, error) {
	var meets []model.Meet
	if err := r.db.WithContext(ctx).Find(&meets).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}

	if meets == nil {
		return []model.Meet{}, nil
	}

	r.logger.Debugw("List completed", "count", len(meets))
	return meets, nil
}

// UpdateStatus sets the status of a meet. Setting the current status again
// is not an error.
func (r *repository) UpdateStatus(ctx context.Context, meetID string, status model.Status) (*model.Meet, error) {
	r.logger.Infow("UpdateStatus called", "meet_id", meetID, "status", status)

	result := r.db.WithContext(ctx).
		Model(&model.Meet{}).
		Where("id = ?", meetID).
		Update("status", status)

	if result.Error != nil {
		r.logger.Errorw("UpdateStatus database error", "meet_id", meetID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateStatus meet not found", "meet_id", meetID)
		return nil, model.ErrMeetNotFound
	}

	return r.GetByID(ctx, meetID)
}
