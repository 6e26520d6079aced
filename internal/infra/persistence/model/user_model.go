package model

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by migrations and tests from other packages.
type UserModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	FirstName        string `gorm:"type:varchar(255);not null"`
	LastName         string `gorm:"type:varchar(255);not null"`
	Email            string `gorm:"type:varchar(255);not null;unique"`
	Username         string `gorm:"type:varchar(255);not null"`
	Password         string `gorm:"type:varchar(255);not null"`
	Role             string `gorm:"type:varchar(255);not null"`
	ConfirmationCode string `gorm:"type:varchar(255);not null"`
	IsConfirmed      bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
