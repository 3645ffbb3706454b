package main

import (
	"github.com/nsd23387/campaign-governance/internal/config"
	"github.com/nsd23387/campaign-governance/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings config.Settings
	Log      *logger.Logger
}
