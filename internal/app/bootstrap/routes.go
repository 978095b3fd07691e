// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	collectorsfeature "github.com/dalemusser/recyclehub/internal/app/features/collectors"
	dashboardfeature "github.com/dalemusser/recyclehub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/recyclehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/recyclehub/internal/app/features/health"
	notificationsfeature "github.com/dalemusser/recyclehub/internal/app/features/notifications"
	ratingsfeature "github.com/dalemusser/recyclehub/internal/app/features/ratings"
	requestsfeature "github.com/dalemusser/recyclehub/internal/app/features/requests"
	usersfeature "github.com/dalemusser/recyclehub/internal/app/features/users"
	"github.com/dalemusser/recyclehub/internal/app/insights"
	collectorstore "github.com/dalemusser/recyclehub/internal/app/store/collectors"
	ratingstore "github.com/dalemusser/recyclehub/internal/app/store/ratings"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	requeststore "github.com/dalemusser/recyclehub/internal/app/store/requests"
	userstore "github.com/dalemusser/recyclehub/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. RecycleHub mounts one feature router
// per console area: the health check, the dashboard aggregates, record
// management for users/collectors/requests/ratings, and the synthesized
// notification feed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.RecycleHubMongoDatabase

	// Stores over the four record collections, plus the snapshot loader
	// the derived-metrics engine reads from.
	users := userstore.New(db)
	collectors := collectorstore.New(db)
	requests := requeststore.New(db)
	ratings := ratingstore.New(db)
	records := recordstore.New(db)

	// Error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.RecycleHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Dashboard aggregates
	dashboardHandler := dashboardfeature.NewHandler(records, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Record management
	usersHandler := usersfeature.NewHandler(users, records, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	collectorsHandler := collectorsfeature.NewHandler(collectors, records, errLog, logger)
	r.Mount("/collectors", collectorsfeature.Routes(collectorsHandler))

	requestsHandler := requestsfeature.NewHandler(requests, records, errLog, logger)
	r.Mount("/requests", requestsfeature.Routes(requestsHandler))

	ratingsHandler := ratingsfeature.NewHandler(ratings, errLog, logger)
	r.Mount("/ratings", ratingsfeature.Routes(ratingsHandler))

	// Synthesized notification feed
	synth := insights.NewSynthesizer(appCfg.NewUserWindow)
	notificationsHandler := notificationsfeature.NewHandler(records, synth, appCfg.FeedCap, errLog, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	return r, nil
}
