package models

// Member is the specialization row for a gym member. The unique index on
// UserID is the real enforcement of the one-member-per-user invariant; the
// service-level pre-check only produces a nicer error.
type Member struct {
	BaseModel
	UserID   string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User     *User  `gorm:"foreignKey:UserID" json:"-"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
