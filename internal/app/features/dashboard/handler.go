// internal/app/features/dashboard/handler.go
package dashboard

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	"go.uber.org/zap"
)

// Handler owns the operator dashboard endpoints. It holds no state
// beyond its dependencies: every request loads a fresh snapshot and
// recomputes the derived values from it.
type Handler struct {
	Records *recordstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(records *recordstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Records: records,
		Log:     logger,
		ErrLog:  errLog,
	}
}
