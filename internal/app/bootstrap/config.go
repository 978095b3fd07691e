// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for RecycleHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, base_url, etc.
//   - Environment variables: RECYCLEHUB_MONGO_URI, RECYCLEHUB_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "recycle_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Base URL for the operator console
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL the console is served from"},

	// Notification feed settings
	{Name: "new_user_window", Default: "168h", Desc: "How far back the new-user notification scan looks (e.g., 168h, 72h)"},
	{Name: "notification_feed_cap", Default: 100, Desc: "Max notifications returned per feed response (0 = unbounded)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "RECYCLEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		BaseURL: appValues.String("base_url"),

		NewUserWindow: appValues.Duration("new_user_window", insights.DefaultNewUserWindow),
		FeedCap:       appValues.Int("notification_feed_cap"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// RecycleHub validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.NewUserWindow <= 0 {
		return fmt.Errorf("new_user_window must be positive, got %s", appCfg.NewUserWindow)
	}
	if appCfg.FeedCap < 0 {
		return fmt.Errorf("notification_feed_cap must not be negative, got %d", appCfg.FeedCap)
	}

	return nil
}
