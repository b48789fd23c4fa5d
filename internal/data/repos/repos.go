package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos/learning"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos/user"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type ProgressRecordRepo = learning.ProgressRecordRepo
type NeuroProfileRepo = learning.NeuroProfileRepo
type UserProfileRepo = user.UserProfileRepo

func NewProgressRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRecordRepo {
	return learning.NewProgressRecordRepo(db, baseLog)
}
func NewNeuroProfileRepo(db *gorm.DB, baseLog *logger.Logger) NeuroProfileRepo {
	return learning.NewNeuroProfileRepo(db, baseLog)
}
func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return user.NewUserProfileRepo(db, baseLog)
}
