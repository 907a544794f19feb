package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/internal/config"
	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Sessions auth.SessionSource
	Logger   *zap.Logger
	Ctx      context.Context
}

// identity resolves the current session, returning a zero identity when no
// session source is configured. Mutations reject the zero identity.
func (app *AppContext) identity() auth.Identity {
	if app.Sessions == nil {
		return auth.Identity{}
	}
	ident, err := app.Sessions.Current(app.Ctx)
	if err != nil {
		return auth.Identity{}
	}
	return ident
}
