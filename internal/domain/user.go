package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:120;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthorityUser is the single authority every authenticated principal holds.
const AuthorityUser = "USER"

// Principal is the request-scoped identity resolved from a verified token.
// It carries no credential material; two principals are the same identity
// iff their IDs match.
type Principal struct {
	ID        uint
	Name      string
	Email     string
	Authority string
}
