package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/movecar/internal/pkg/models"
	nrpkg "github.com/piresc/movecar/internal/pkg/newrelic"
	"github.com/piresc/movecar/internal/utils"
	"github.com/piresc/movecar/services/movecar"
)

// GetRequesterLocation returns the location shared with the latest notify
func (uc *MoveCarUC) GetRequesterLocation(ctx context.Context, plate string) (*models.RequesterLocation, error) {
	canonical := utils.CanonicalPlate(plate)
	if canonical == "" {
		return nil, movecar.ErrInvalidPlate
	}

	loc, err := nrpkg.WithSegmentAndReturn(ctx, "store.requester_location", func() (*models.RequesterLocation, error) {
		return uc.repo.GetRequesterLocation(ctx, canonical)
	})
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("requester location for %s: %w", canonical, movecar.ErrLocationNotFound)
	}
	return loc, nil
}

// GetStatus returns the combined view requesters poll. An absent status
// record reads as waiting, so a plate that never had a request also
// reports waiting.
func (uc *MoveCarUC) GetStatus(ctx context.Context, plate string) (*models.StatusView, error) {
	canonical := utils.CanonicalPlate(plate)
	if canonical == "" {
		return &models.StatusView{Status: models.StatusUnknown}, nil
	}

	status, found, err := uc.repo.GetStatus(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if !found {
		status = models.StatusWaiting
	}

	ownerLoc, err := uc.repo.GetOwnerLocation(ctx, canonical)
	if err != nil {
		return nil, err
	}

	allowCall, err := uc.repo.GetAllowCall(ctx, canonical)
	if err != nil {
		return nil, err
	}

	view := &models.StatusView{
		Status:        status,
		OwnerLocation: ownerLoc,
		AllowCall:     allowCall,
	}

	ledger, err := uc.repo.GetEscalation(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if ledger != nil {
		esc := uc.policy.Evaluate(ledger, uc.now())
		view.Escalation = &esc
	}

	return view, nil
}

func timeFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
