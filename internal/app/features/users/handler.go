// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	recordstore "github.com/dalemusser/recyclehub/internal/app/store/records"
	userstore "github.com/dalemusser/recyclehub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler owns the user management endpoints.
type Handler struct {
	Users   *userstore.Store
	Records *recordstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler creates a new users Handler.
func NewHandler(users *userstore.Store, records *recordstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   users,
		Records: records,
		Log:     logger,
		ErrLog:  errLog,
	}
}
