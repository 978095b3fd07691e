// internal/app/features/ratings/handler.go
package ratings

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	ratingstore "github.com/dalemusser/recyclehub/internal/app/store/ratings"
	"go.uber.org/zap"
)

// Handler owns the rating endpoints.
type Handler struct {
	Ratings *ratingstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler creates a new ratings Handler.
func NewHandler(ratings *ratingstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Ratings: ratings,
		Log:     logger,
		ErrLog:  errLog,
	}
}
