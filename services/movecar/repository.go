package movecar

import (
	"context"

	"github.com/piresc/movecar/internal/pkg/models"
)

// CarRegistry resolves canonical plates to their static configuration
type CarRegistry interface {
	Lookup(plate string) (models.CarConfig, bool)
}

// MoveCarRepo defines typed access to the per-plate ephemeral records.
// Absent or expired records read as nil/zero values, never as errors.
type MoveCarRepo interface {
	SetStatus(ctx context.Context, plate string, status models.RequestStatus) error
	GetStatus(ctx context.Context, plate string) (models.RequestStatus, bool, error)

	SetRequesterLocation(ctx context.Context, plate string, loc *models.RequesterLocation) error
	GetRequesterLocation(ctx context.Context, plate string) (*models.RequesterLocation, error)

	SetOwnerLocation(ctx context.Context, plate string, loc *models.OwnerLocation) error
	DeleteOwnerLocation(ctx context.Context, plate string) error
	GetOwnerLocation(ctx context.Context, plate string) (*models.OwnerLocation, error)

	SetAllowCall(ctx context.Context, plate string, allow bool) error
	ClearAllowCall(ctx context.Context, plate string) error
	GetAllowCall(ctx context.Context, plate string) (bool, error)

	SetEscalation(ctx context.Context, plate string, rec *models.EscalationRecord) error
	GetEscalation(ctx context.Context, plate string) (*models.EscalationRecord, error)
}
