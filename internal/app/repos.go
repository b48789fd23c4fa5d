package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Repos struct {
	Progress     repos.ProgressRecordRepo
	NeuroProfile repos.NeuroProfileRepo
	UserProfile  repos.UserProfileRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Progress:     repos.NewProgressRecordRepo(db, log),
		NeuroProfile: repos.NewNeuroProfileRepo(db, log),
		UserProfile:  repos.NewUserProfileRepo(db, log),
	}
}
