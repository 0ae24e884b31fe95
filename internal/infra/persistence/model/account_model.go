package model

import "time"

// AccountModel mirrors the 'clients' table created by the goose migrations.
type AccountModel struct {
	Email          string    `gorm:"column:email;type:varchar(255);primaryKey"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "clients"
}
