package user

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/neuroadapt-backend/internal/data/db"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type UserProfileRepo interface {
	// GetByUserID returns (nil, nil) when the user has no profile.
	GetByUserID(dbc dbctx.Context, userID string) (*types.UserProfile, error)
	// Upsert inserts or replaces the neuroprofile choice keyed by user_id.
	Upsert(dbc dbctx.Context, row *types.UserProfile) (*types.UserProfile, error)
}

type userProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return &userProfileRepo{
		db:  db,
		log: baseLog.With("repo", "UserProfileRepo"),
	}
}

func (r *userProfileRepo) GetByUserID(dbc dbctx.Context, userID string) (*types.UserProfile, error) {
	if userID == "" {
		return nil, nil
	}
	var row types.UserProfile
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&row).Error; err != nil {
		r.log.Warn("Get user profile failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	if row.UserID == "" {
		return nil, nil
	}
	return &row, nil
}

func (r *userProfileRepo) Upsert(dbc dbctx.Context, row *types.UserProfile) (*types.UserProfile, error) {
	if row == nil || row.UserID == "" {
		return nil, fmt.Errorf("user profile missing user id")
	}
	if err := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"neuroprofile_id"}),
		}).
		Create(row).Error; err != nil {
		r.log.Warn("Upsert user profile failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("upsert user profile: %w", err)
	}
	return row, nil
}
