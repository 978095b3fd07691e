// internal/app/features/collectors/handler.go
package collectors

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	collectorstore "github.com/dalemusser/recyclehub/internal/app/store/collectors"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	"go.uber.org/zap"
)

// Handler owns the collector management endpoints.
type Handler struct {
	Collectors *collectorstore.Store
	Records    *recordstore.Store
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler creates a new collectors Handler.
func NewHandler(collectors *collectorstore.Store, records *recordstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Collectors: collectors,
		Records:    records,
		Log:        logger,
		ErrLog:     errLog,
	}
}
