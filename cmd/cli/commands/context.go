package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/internal/config"
	"github.com/adaobialike/ikeji-outreach/pkg/cache"
	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Client *apiclient.Client
	Cache  *cache.Cache
	Mirror *postgres.Mirror // nil when no mirror DSN is configured
	Logger *zap.Logger
	Ctx    context.Context
}
