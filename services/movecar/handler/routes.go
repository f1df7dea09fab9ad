package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/i18n"
	nrpkg "github.com/piresc/movecar/internal/pkg/newrelic"
	"github.com/piresc/movecar/services/movecar"
	httpHandler "github.com/piresc/movecar/services/movecar/handler/http"
)

// Handler combines all handlers for the move-car service
type Handler struct {
	moveCarHTTP *httpHandler.MoveCarHandler
}

// NewHandler creates a new combined handler
func NewHandler(moveCarUC movecar.MoveCarUC, catalog *i18n.Catalog) *Handler {
	return &Handler{
		moveCarHTTP: httpHandler.NewMoveCarHandler(moveCarUC, catalog),
	}
}

// RegisterRoutes registers the API routes and installs the request
// validator. notifyMiddleware only wraps POST /api/notify.
func (h *Handler) RegisterRoutes(e *echo.Echo, notifyMiddleware ...echo.MiddlewareFunc) {
	e.Validator = httpHandler.NewRequestValidator()

	api := e.Group("/api")
	api.POST("/verify-license", nrpkg.TraceHandler("VerifyLicense", h.moveCarHTTP.VerifyLicense))
	api.POST("/notify", nrpkg.TraceHandler("Notify", h.moveCarHTTP.Notify), notifyMiddleware...)
	api.GET("/get-location", nrpkg.TraceHandler("GetLocation", h.moveCarHTTP.GetLocation))
	api.POST("/owner-confirm", nrpkg.TraceHandler("OwnerConfirm", h.moveCarHTTP.OwnerConfirm))
	api.GET("/check-status", nrpkg.TraceHandler("CheckStatus", h.moveCarHTTP.CheckStatus))
}
