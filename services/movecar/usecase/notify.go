package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/geo"
	"github.com/piresc/movecar/internal/pkg/i18n"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	nrpkg "github.com/piresc/movecar/internal/pkg/newrelic"
	"github.com/piresc/movecar/internal/utils"
	"github.com/piresc/movecar/services/movecar"
	"github.com/piresc/movecar/services/movecar/gateway"
)

// VerifyLicense resolves a plate through the registry
func (uc *MoveCarUC) VerifyLicense(ctx context.Context, plate string) (models.CarConfig, error) {
	canonical := utils.CanonicalPlate(plate)
	if canonical == "" {
		return models.CarConfig{}, movecar.ErrInvalidPlate
	}

	car, ok := uc.registry.Lookup(canonical)
	if !ok {
		return models.CarConfig{}, fmt.Errorf("verify %s: %w", canonical, movecar.ErrCarNotFound)
	}
	return car, nil
}

// InitiateNotify resets the plate's request to waiting, records the
// requester location when one is given and triggers push delivery.
// Delivery failures do not roll back the records already written.
func (uc *MoveCarUC) InitiateNotify(ctx context.Context, req models.NotifyRequest) error {
	plate := utils.CanonicalPlate(req.Plate)
	if plate == "" {
		return movecar.ErrInvalidPlate
	}

	message := strings.TrimSpace(req.Message)
	if utils.RuneLen(message) > constants.MaxMessageRunes {
		return fmt.Errorf("message has %d characters: %w", utils.RuneLen(message), movecar.ErrInvalidMessage)
	}
	if message == "" {
		message = uc.catalog.T(req.Language, i18n.DefaultMessage)
	}

	hasLocation := req.Location.Complete()
	if hasLocation {
		if err := validateCoordinates(*req.Location.Lat, *req.Location.Lng); err != nil {
			return err
		}
	}

	car, ok := uc.registry.Lookup(plate)
	if !ok {
		return fmt.Errorf("notify %s: %w", plate, movecar.ErrCarNotFound)
	}

	nrpkg.AddTransactionAttribute(ctx, "plate", plate)

	now := uc.now()
	ledger, err := uc.repo.GetEscalation(ctx, plate)
	if err != nil {
		return err
	}
	if uc.cfg.Escalation.Enforce && ledger != nil {
		if remaining := uc.policy.Remaining(ledger.Count, timeFromMillis(ledger.LastNotifyAt), now); remaining > 0 {
			return &movecar.CooldownError{RetryAfter: remaining}
		}
	}
	ledger = uc.policy.Next(ledger, now)

	if err := uc.repo.SetStatus(ctx, plate, models.StatusWaiting); err != nil {
		return err
	}
	if err := uc.repo.ClearAllowCall(ctx, plate); err != nil {
		return err
	}
	if err := uc.repo.SetEscalation(ctx, plate, ledger); err != nil {
		return err
	}

	var geohash string
	if hasLocation {
		corrected := geo.Correct(*req.Location.Lat, *req.Location.Lng)
		geohash = corrected.Geohash
		loc := &models.RequesterLocation{
			Lat:      corrected.Point.Lat,
			Lng:      corrected.Point.Lng,
			RawLat:   corrected.Raw.Lat,
			RawLng:   corrected.Raw.Lng,
			Geohash:  corrected.Geohash,
			MapLinks: corrected.Links,
		}
		if err := uc.repo.SetRequesterLocation(ctx, plate, loc); err != nil {
			return err
		}
	}

	// The request is committed; a disconnecting client must not cancel
	// the delay or the delivery.
	deliveryCtx := context.WithoutCancel(ctx)

	if req.Delayed {
		delay := uc.policy.NoLocationDelay
		logger.InfoCtx(deliveryCtx, "Delaying push delivery",
			logger.Plate(plate),
			logger.Duration("delay", delay))
		uc.sleep(delay)
	}

	msg := uc.renderPush(req, car, plate, message, hasLocation)
	sendErr := nrpkg.WithSegment(deliveryCtx, "push.send", func() error {
		return uc.pushGW.Send(deliveryCtx, car, msg)
	})

	event := models.NotifyRequestedEvent{
		ID:          uuid.NewString(),
		Plate:       plate,
		HasLocation: hasLocation,
		Geohash:     geohash,
		Delayed:     req.Delayed,
		NotifyCount: ledger.Count,
		CreatedAt:   now.UTC(),
	}
	if err := uc.eventGW.PublishNotifyRequested(deliveryCtx, event); err != nil {
		logger.WarnCtx(deliveryCtx, "Failed to publish notify event",
			logger.Plate(plate),
			logger.Err(err))
	}

	if sendErr != nil {
		return sendErr
	}

	logger.InfoCtx(deliveryCtx, "Notify delivered",
		logger.Plate(plate),
		logger.Int("notify_count", ledger.Count),
		logger.Bool("has_location", hasLocation))
	return nil
}

func (uc *MoveCarUC) renderPush(req models.NotifyRequest, car models.CarConfig, plate, message string, hasLocation bool) movecar.PushMessage {
	lang := req.Language

	lines := []string{
		uc.catalog.T(lang, i18n.PushPlateLine, car.Plate),
		uc.catalog.T(lang, i18n.PushMessageLine, message),
	}
	if hasLocation {
		lines = append(lines, uc.catalog.T(lang, i18n.PushLocationLine))
	} else {
		lines = append(lines, uc.catalog.T(lang, i18n.PushNoLocationLine))
	}

	baseURL := uc.cfg.Server.PublicBaseURL
	if baseURL == "" {
		baseURL = req.BaseURL
	}

	msg := movecar.PushMessage{
		Title: uc.catalog.T(lang, i18n.PushTitle),
		Body:  strings.Join(lines, "\n"),
	}
	if baseURL != "" {
		msg.ConfirmURL = gateway.ConfirmURL(baseURL, constants.OwnerConfirmPath, plate)
	}
	return msg
}

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("coordinates (%v, %v): %w", lat, lng, movecar.ErrInvalidLocation)
	}
	return nil
}
