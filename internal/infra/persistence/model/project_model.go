package model

// CurrentProjectModel mirrors the collaborator-owned 'current_projects' table.
type CurrentProjectModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CurrentProjectModel) TableName() string {
	return "current_projects"
}

// UserCurrentProjectModel mirrors the 'user_current_projects' association table.
// It has no primary key of its own; duplicate rows are allowed.
type UserCurrentProjectModel struct {
	UserID           int64 `gorm:"not null"`
	CurrentProjectID int64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserCurrentProjectModel) TableName() string {
	return "user_current_projects"
}
