package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // stored lowercased
	PasswordHash string // argon2 encoded, never serialized
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
