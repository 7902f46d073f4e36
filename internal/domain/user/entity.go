package user

// User is a CRM account, kept as seed and reference data. Passwords are
// stored as bcrypt hashes, never plaintext.
type User struct {
	ID           int64   `gorm:"column:id;primaryKey" json:"id"`
	Username     string  `gorm:"column:username;uniqueIndex;not null" json:"username" validate:"required"`
	PasswordHash string  `gorm:"column:password" json:"-"`
	Name         string  `gorm:"column:name;not null" json:"name" validate:"required"`
	Role         string  `gorm:"column:role;not null" json:"role" validate:"required"`
	Team         *string `gorm:"column:team" json:"team"`
}

func (User) TableName() string { return "users" }
