package entries

import (
	"context"

	"github.com/dmitrijs2005/picdiary/internal/server/models"
)

// Repository stores diary entries. Every lookup is scoped to an owner, so a
// sequence number of another user is simply not found.
type Repository interface {
	Create(ctx context.Context, entry *models.DiaryEntry) error
	Get(ctx context.Context, owner string, seq int) (*models.DiaryEntry, error)
	Exists(ctx context.Context, owner string, seq int) (bool, error)
	List(ctx context.Context, owner string) ([]*models.DiaryEntry, error)
	UpdateText(ctx context.Context, owner string, seq int, title, body string) error
	// Delete removes the entry and returns its image key ("" when none).
	Delete(ctx context.Context, owner string, seq int) (string, error)
	// ShiftDown renumbers every entry above seq one position lower.
	ShiftDown(ctx context.Context, owner string, seq int) (int64, error)
}
