package client

import (
	"context"

	"github.com/dmitrijs2005/picdiary/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	LoggedIn() bool

	StartInterview(ctx context.Context) (sessionID string, question string, err error)
	Answer(ctx context.Context, sessionID, answer string) (string, error)
	FinalizeInterview(ctx context.Context, sessionID, answer, date string) (*models.Entry, error)
	CloseInterview(ctx context.Context, sessionID string) error

	CreateEntry(ctx context.Context, title, body, date string) (*models.Entry, error)
	ListEntries(ctx context.Context) ([]*models.Entry, error)
	GetEntry(ctx context.Context, number int) (*models.Page, error)
	EditEntry(ctx context.Context, number int, title, body string) error
	DeleteEntry(ctx context.Context, number int) error
}
