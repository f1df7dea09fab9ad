package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/i18n"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/internal/utils"
	"github.com/piresc/movecar/services/movecar"
)

// MoveCarHandler handles HTTP requests for the move-car API
type MoveCarHandler struct {
	moveCarUC movecar.MoveCarUC
	catalog   *i18n.Catalog
}

// NewMoveCarHandler creates a new move-car HTTP handler
func NewMoveCarHandler(moveCarUC movecar.MoveCarUC, catalog *i18n.Catalog) *MoveCarHandler {
	return &MoveCarHandler{
		moveCarUC: moveCarUC,
		catalog:   catalog,
	}
}

// VerifyLicense handles POST /api/verify-license. Unknown plates are a
// regular 200 answer with success=false.
func (h *MoveCarHandler) VerifyLicense(c echo.Context) error {
	lang := language(c)

	var req VerifyLicenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, VerifyLicenseResponse{Message: h.catalog.T(lang, i18n.ErrInvalidBody)})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, VerifyLicenseResponse{Message: h.catalog.T(lang, messageKey(err))})
	}

	car, err := h.moveCarUC.VerifyLicense(c.Request().Context(), req.License)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, VerifyLicenseResponse{Success: true, License: car.Plate, Phone: car.Phone})
	case errors.Is(err, movecar.ErrCarNotFound):
		return c.JSON(http.StatusOK, VerifyLicenseResponse{Message: h.catalog.T(lang, i18n.ErrCarNotFound)})
	default:
		return h.handleError(c, err)
	}
}

// Notify handles POST /api/notify
func (h *MoveCarHandler) Notify(c echo.Context) error {
	lang := language(c)

	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, h.catalog.T(lang, i18n.ErrInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	err := h.moveCarUC.InitiateNotify(c.Request().Context(), models.NotifyRequest{
		Plate:    req.License,
		Message:  req.Message,
		Location: req.Location,
		Delayed:  req.Delayed,
		Language: lang,
		BaseURL:  c.Scheme() + "://" + c.Request().Host,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetLocation handles GET /api/get-location?plate=
func (h *MoveCarHandler) GetLocation(c echo.Context) error {
	plate := c.QueryParam("plate")
	if utils.CanonicalPlate(plate) == "" {
		return c.JSON(http.StatusBadRequest, LocationErrorResponse{Error: "No license"})
	}

	loc, err := h.moveCarUC.GetRequesterLocation(c.Request().Context(), plate)
	if errors.Is(err, movecar.ErrLocationNotFound) {
		return c.JSON(http.StatusNotFound, LocationErrorResponse{Error: "No location"})
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, loc)
}

// OwnerConfirm handles POST /api/owner-confirm
func (h *MoveCarHandler) OwnerConfirm(c echo.Context) error {
	var req OwnerConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, h.catalog.T(language(c), i18n.ErrInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	err := h.moveCarUC.ConfirmByOwner(c.Request().Context(), models.ConfirmRequest{
		Plate:     req.License,
		Location:  req.Location,
		AllowCall: req.AllowCall,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// CheckStatus handles GET /api/check-status?plate=
func (h *MoveCarHandler) CheckStatus(c echo.Context) error {
	view, err := h.moveCarUC.GetStatus(c.Request().Context(), c.QueryParam("plate"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *MoveCarHandler) validationError(c echo.Context, err error) error {
	return utils.BadRequestResponse(c, h.catalog.T(language(c), messageKey(err)))
}

// handleError maps domain error kinds to HTTP responses
func (h *MoveCarHandler) handleError(c echo.Context, err error) error {
	lang := language(c)

	switch movecar.Kind(err) {
	case movecar.KindInput:
		key := i18n.ErrInvalidBody
		switch {
		case errors.Is(err, movecar.ErrInvalidPlate):
			key = i18n.ErrPlateRequired
		case errors.Is(err, movecar.ErrInvalidMessage):
			return utils.BadRequestResponse(c, h.catalog.T(lang, i18n.ErrMessageTooLong, constants.MaxMessageRunes))
		case errors.Is(err, movecar.ErrInvalidLocation):
			key = i18n.ErrInvalidLocation
		}
		return utils.BadRequestResponse(c, h.catalog.T(lang, key))
	case movecar.KindNotFound:
		return utils.NotFoundResponse(c, h.catalog.T(lang, i18n.ErrCarNotFound))
	case movecar.KindUpstreamDelivery:
		return utils.InternalServerErrorResponse(c, h.catalog.T(lang, i18n.ErrDeliveryFailed))
	case movecar.KindCooldown:
		seconds := 0
		var cooldown *movecar.CooldownError
		if errors.As(err, &cooldown) {
			seconds = cooldown.RetryAfterSeconds()
		}
		return utils.TooManyRequestsResponse(c, h.catalog.T(lang, i18n.ErrCooldownActive, seconds), seconds)
	default:
		logger.ErrorCtx(c.Request().Context(), "Move-car request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, h.catalog.T(lang, i18n.ErrInternal))
	}
}

func language(c echo.Context) string {
	if lang := c.QueryParam("lang"); lang != "" {
		return lang
	}
	return c.Request().Header.Get("Accept-Language")
}
