package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/picdiary/internal/dbx"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/entries"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a *sql.Tx, so
// services can run several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
}
