package models

import "time"

type RefreshToken struct {
	ID        string
	UserName  string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
