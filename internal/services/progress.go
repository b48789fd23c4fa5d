package services

import (
	"context"
	"net/http"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type ProgressInput struct {
	ContentID string
	Status    string
	Score     *int
}

type ProgressService interface {
	// Record inserts one row owned by the caller and returns the inserted rows.
	Record(ctx context.Context, in ProgressInput) ([]*types.ProgressRecord, error)
	// ListMine returns the caller's rows ordered by id.
	ListMine(ctx context.Context) ([]*types.ProgressRecord, error)
}

type progressService struct {
	log  *logger.Logger
	repo repos.ProgressRecordRepo
}

func NewProgressService(log *logger.Logger, repo repos.ProgressRecordRepo) ProgressService {
	return &progressService{
		log:  log.With("service", "ProgressService"),
		repo: repo,
	}
}

func (ps *progressService) Record(ctx context.Context, in ProgressInput) ([]*types.ProgressRecord, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	row := &types.ProgressRecord{
		UserID:    userID,
		ContentID: in.ContentID,
		Status:    in.Status,
		Score:     in.Score,
	}
	rows, err := ps.repo.Create(dbctx.Context{Ctx: context.WithoutCancel(ctx)}, []*types.ProgressRecord{row})
	if err != nil {
		ps.log.Error("Record progress failed", "user_id", userID, "error", err)
		return nil, apierr.Internal(err)
	}
	return rows, nil
}

func (ps *progressService) ListMine(ctx context.Context) ([]*types.ProgressRecord, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := ps.repo.ListByUserID(dbctx.Context{Ctx: context.WithoutCancel(ctx)}, userID)
	if err != nil {
		ps.log.Error("List progress failed", "user_id", userID, "error", err)
		return nil, apierr.Internal(err)
	}
	return rows, nil
}

// callerID reads the identity attached by the auth middleware.
func callerID(ctx context.Context) (string, error) {
	id := ctxutil.UserID(ctx)
	if id == "" {
		return "", apierr.New(http.StatusUnauthorized, apierr.CodeUnauthorized, ErrUnauthenticated)
	}
	return id, nil
}
