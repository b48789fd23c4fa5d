package learning

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/data/db"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type ProgressRecordRepo interface {
	Create(dbc dbctx.Context, rows []*types.ProgressRecord) ([]*types.ProgressRecord, error)
	ListByUserID(dbc dbctx.Context, userID string) ([]*types.ProgressRecord, error)
}

type progressRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRecordRepo {
	return &progressRecordRepo{
		db:  db,
		log: baseLog.With("repo", "ProgressRecordRepo"),
	}
}

// Create inserts rows exactly as given; callers stamp UserID.
func (r *progressRecordRepo) Create(dbc dbctx.Context, rows []*types.ProgressRecord) ([]*types.ProgressRecord, error) {
	if len(rows) == 0 {
		return []*types.ProgressRecord{}, nil
	}
	for _, row := range rows {
		if row == nil || row.UserID == "" {
			return nil, fmt.Errorf("progress record missing user id")
		}
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		r.log.Warn("Insert progress failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("insert progress: %w", err)
	}
	return rows, nil
}

func (r *progressRecordRepo) ListByUserID(dbc dbctx.Context, userID string) ([]*types.ProgressRecord, error) {
	out := []*types.ProgressRecord{}
	if userID == "" {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		r.log.Warn("List progress failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return out, nil
}
