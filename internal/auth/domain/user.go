package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return the hash in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthToken is one entry of a user's active token list. The composite primary
// key makes append and remove single conditional statements, so two requests
// logging the same session out cannot race each other.
type AuthToken struct {
	UserID    string    `json:"-" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"primaryKey"`
	Access    string    `json:"access" gorm:"not null;default:auth"`
	CreatedAt time.Time `json:"-"`
}
