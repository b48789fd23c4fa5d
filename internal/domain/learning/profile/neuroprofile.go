package profile

// Names of the seeded neuroprofiles. Only NameDyslexia has an adaptation today.
const (
	NameDyslexia    = "dyslexia"
	NameADHD        = "adhd"
	NameAutism      = "autism"
	NameDyscalculia = "dyscalculia"
)

// NeuroProfile is read-only reference data.
type NeuroProfile struct {
	ID   int64  `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (NeuroProfile) TableName() string { return "neuroprofiles" }
