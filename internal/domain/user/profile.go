package user

// UserProfile maps a user to the neuroprofile they picked. One row per user.
type UserProfile struct {
	UserID         string `gorm:"primaryKey;column:user_id" json:"user_id"`
	NeuroProfileID int64  `gorm:"not null;index;column:neuroprofile_id" json:"neuroprofile_id"`
}

func (UserProfile) TableName() string { return "user_profiles" }
