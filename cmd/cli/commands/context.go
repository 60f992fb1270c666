package commands

import (
	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/internal/config"
	"github.com/jakechorley/vaccination-hubs/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands.
// The campaign, and with it the allocation ledger, lives for the whole process
// so epochs carry over between commands of an interactive session.
type AppContext struct {
	Cfg      *config.Config
	Campaign *services.Campaign
	Logger   *zap.Logger
}
