// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP ports,
// TLS, logging level, and request limits. AppConfig is where everything
// specific to RecycleHub lives: the Mongo connection, the base URL the
// console links against, and the tunables of the derived-metrics engine.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Base URL the operator console is served from
	BaseURL string // e.g., "https://console.recyclehub.example" or "http://localhost:3000"

	// NewUserWindow is how far back the notification feed scans for
	// recently registered users.
	NewUserWindow time.Duration

	// FeedCap bounds the notification feed length per response.
	// Zero means unbounded.
	FeedCap int
}
