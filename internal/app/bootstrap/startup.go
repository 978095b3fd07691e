// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// RecycleHub keeps no warm state: every derived value is recomputed from
// a fresh snapshot per request, so there is nothing to preload here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("recyclehub starting",
		zap.String("base_url", appCfg.BaseURL),
		zap.Duration("new_user_window", appCfg.NewUserWindow))
	return nil
}
