package learning

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/neuroadapt-backend/internal/data/db"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type NeuroProfileRepo interface {
	List(dbc dbctx.Context) ([]*types.NeuroProfile, error)
	// GetByID returns (nil, nil) when no row matches.
	GetByID(dbc dbctx.Context, id int64) (*types.NeuroProfile, error)
	// EnsureNames inserts any missing names and leaves existing rows untouched.
	EnsureNames(dbc dbctx.Context, names []string) (int64, error)
}

type neuroProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNeuroProfileRepo(db *gorm.DB, baseLog *logger.Logger) NeuroProfileRepo {
	return &neuroProfileRepo{
		db:  db,
		log: baseLog.With("repo", "NeuroProfileRepo"),
	}
}

func (r *neuroProfileRepo) List(dbc dbctx.Context) ([]*types.NeuroProfile, error) {
	out := []*types.NeuroProfile{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		r.log.Warn("List neuroprofiles failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("list neuroprofiles: %w", err)
	}
	return out, nil
}

func (r *neuroProfileRepo) GetByID(dbc dbctx.Context, id int64) (*types.NeuroProfile, error) {
	var row types.NeuroProfile
	if err := dbc.DB(r.db).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error; err != nil {
		r.log.Warn("Get neuroprofile failed", "error", err, "sqlstate", db.SQLState(err))
		return nil, fmt.Errorf("get neuroprofile %d: %w", id, err)
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *neuroProfileRepo) EnsureNames(dbc dbctx.Context, names []string) (int64, error) {
	rows := make([]*types.NeuroProfile, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		rows = append(rows, &types.NeuroProfile{Name: n})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		r.log.Warn("Seed neuroprofiles failed", "error", res.Error, "sqlstate", db.SQLState(res.Error))
		return 0, fmt.Errorf("ensure neuroprofiles: %w", res.Error)
	}
	return res.RowsAffected, nil
}
