package domain

import (
	"github.com/yungbote/neuroadapt-backend/internal/domain/learning/profile"
	"github.com/yungbote/neuroadapt-backend/internal/domain/learning/progress"
	"github.com/yungbote/neuroadapt-backend/internal/domain/user"
)

const (
	NeuroProfileDyslexia    = profile.NameDyslexia
	NeuroProfileADHD        = profile.NameADHD
	NeuroProfileAutism      = profile.NameAutism
	NeuroProfileDyscalculia = profile.NameDyscalculia
)

type User = user.User
type UserProfile = user.UserProfile

type NeuroProfile = profile.NeuroProfile
type ProgressRecord = progress.Record
