package domain

import "time"

// Todo is a single item owned by exactly one user. Creator is set at
// creation and never reassigned; every lookup through the API filters by
// it. CompletedAt is epoch milliseconds and is null whenever Completed
// is false.
type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Text        string    `json:"text" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CompletedAt *int64    `json:"completedAt"`
	Creator     string    `json:"creator" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
