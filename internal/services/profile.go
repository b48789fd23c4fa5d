package services

import (
	"context"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type ProfileService interface {
	ListNeuroProfiles(ctx context.Context) ([]*types.NeuroProfile, error)
	// SetMine upserts the caller's neuroprofile choice. The id is not checked
	// here; the store's foreign key rejects unknown ids.
	SetMine(ctx context.Context, neuroProfileID int64) ([]*types.UserProfile, error)
}

type profileService struct {
	log              *logger.Logger
	neuroProfileRepo repos.NeuroProfileRepo
	userProfileRepo  repos.UserProfileRepo
}

func NewProfileService(log *logger.Logger, neuroProfileRepo repos.NeuroProfileRepo, userProfileRepo repos.UserProfileRepo) ProfileService {
	return &profileService{
		log:              log.With("service", "ProfileService"),
		neuroProfileRepo: neuroProfileRepo,
		userProfileRepo:  userProfileRepo,
	}
}

func (s *profileService) ListNeuroProfiles(ctx context.Context) ([]*types.NeuroProfile, error) {
	rows, err := s.neuroProfileRepo.List(dbctx.Context{Ctx: context.WithoutCancel(ctx)})
	if err != nil {
		s.log.Error("List neuroprofiles failed", "error", err)
		return nil, apierr.Internal(err)
	}
	return rows, nil
}

func (s *profileService) SetMine(ctx context.Context, neuroProfileID int64) ([]*types.UserProfile, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.userProfileRepo.Upsert(dbctx.Context{Ctx: context.WithoutCancel(ctx)}, &types.UserProfile{
		UserID:         userID,
		NeuroProfileID: neuroProfileID,
	})
	if err != nil {
		s.log.Error("Upsert user profile failed", "user_id", userID, "neuroprofile_id", neuroProfileID, "error", err)
		return nil, apierr.Internal(err)
	}
	return []*types.UserProfile{row}, nil
}
