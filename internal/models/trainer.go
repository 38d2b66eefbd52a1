package models

// Trainer is the specialization row for a trainer. Length bounds on the text
// fields are validated at the service boundary.
type Trainer struct {
	BaseModel
	UserID       string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User         *User  `gorm:"foreignKey:UserID" json:"-"`
	Experience   string `gorm:"size:200;not null" json:"experience"`
	Introduction string `gorm:"size:500;not null" json:"introduction"`
}
