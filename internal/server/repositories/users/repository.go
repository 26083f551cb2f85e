package users

import (
	"context"

	"github.com/dmitrijs2005/picdiary/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// IncrementPostCount bumps post_count and returns the new value.
	IncrementPostCount(ctx context.Context, login string) (int, error)
	// DecrementPostCount lowers post_count, never below zero.
	DecrementPostCount(ctx context.Context, login string) (int, error)
}
