// internal/app/features/requests/handler.go
package requests

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	requeststore "github.com/dalemusser/recyclehub/internal/app/store/requests"
	"go.uber.org/zap"
)

// Handler owns the collection request endpoints.
type Handler struct {
	Requests *requeststore.Store
	Records  *recordstore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler creates a new requests Handler.
func NewHandler(requests *requeststore.Store, records *recordstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Requests: requests,
		Records:  records,
		Log:      logger,
		ErrLog:   errLog,
	}
}
