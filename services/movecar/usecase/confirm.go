package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/movecar/internal/pkg/geo"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	nrpkg "github.com/piresc/movecar/internal/pkg/newrelic"
	"github.com/piresc/movecar/internal/utils"
	"github.com/piresc/movecar/services/movecar"
)

// ConfirmByOwner records the owner's response. Without a location any
// previously shared owner location is deleted so it cannot resurface.
func (uc *MoveCarUC) ConfirmByOwner(ctx context.Context, req models.ConfirmRequest) error {
	plate := utils.CanonicalPlate(req.Plate)
	if plate == "" {
		return movecar.ErrInvalidPlate
	}

	shared := req.Location.Complete()
	if shared {
		if err := validateCoordinates(*req.Location.Lat, *req.Location.Lng); err != nil {
			return err
		}
	}

	nrpkg.AddTransactionAttribute(ctx, "plate", plate)
	now := uc.now()

	if shared {
		corrected := geo.Correct(*req.Location.Lat, *req.Location.Lng)
		loc := &models.OwnerLocation{
			Lat:         corrected.Point.Lat,
			Lng:         corrected.Point.Lng,
			RawLat:      corrected.Raw.Lat,
			RawLng:      corrected.Raw.Lng,
			Geohash:     corrected.Geohash,
			MapLinks:    corrected.Links,
			ConfirmedAt: now.UnixMilli(),
		}
		if err := uc.repo.SetOwnerLocation(ctx, plate, loc); err != nil {
			return err
		}
	} else if err := uc.repo.DeleteOwnerLocation(ctx, plate); err != nil {
		return err
	}

	if err := uc.repo.SetAllowCall(ctx, plate, req.AllowCall); err != nil {
		return err
	}
	if err := uc.repo.SetStatus(ctx, plate, models.StatusConfirmed); err != nil {
		return err
	}

	event := models.OwnerConfirmedEvent{
		ID:             uuid.NewString(),
		Plate:          plate,
		SharedLocation: shared,
		AllowCall:      req.AllowCall,
		CreatedAt:      now.UTC(),
	}
	if err := uc.eventGW.PublishOwnerConfirmed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish confirm event",
			logger.Plate(plate),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Owner confirmed",
		logger.Plate(plate),
		logger.Bool("shared_location", shared),
		logger.Bool("allow_call", req.AllowCall))
	return nil
}
