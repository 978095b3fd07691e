// internal/app/features/notifications/handler.go
package notifications

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/insights"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	"go.uber.org/zap"
)

// Handler owns the notification feed endpoint.
type Handler struct {
	Records *recordstore.Store
	Synth   *insights.Synthesizer

	// FeedCap bounds the feed length per response; zero means unbounded.
	FeedCap int

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler creates a new notifications Handler.
func NewHandler(records *recordstore.Store, synth *insights.Synthesizer, feedCap int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Records: records,
		Synth:   synth,
		FeedCap: feedCap,
		Log:     logger,
		ErrLog:  errLog,
	}
}
