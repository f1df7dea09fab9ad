package movecar

import (
	"context"

	"github.com/piresc/movecar/internal/pkg/models"
)

// MoveCarUC defines the coordination engine for per-plate move requests
type MoveCarUC interface {
	// VerifyLicense resolves a plate through the car registry
	VerifyLicense(ctx context.Context, plate string) (models.CarConfig, error)
	// InitiateNotify records a pending request and triggers push delivery
	InitiateNotify(ctx context.Context, req models.NotifyRequest) error
	// GetRequesterLocation returns the location the requester shared
	GetRequesterLocation(ctx context.Context, plate string) (*models.RequesterLocation, error)
	// ConfirmByOwner records the owner's response
	ConfirmByOwner(ctx context.Context, req models.ConfirmRequest) error
	// GetStatus returns the combined view pollers observe
	GetStatus(ctx context.Context, plate string) (*models.StatusView, error)
}
