package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/database"
	"github.com/piresc/movecar/internal/pkg/models"
)

// MoveCarRepo implements the per-plate record repository over a KeyValueStore
type MoveCarRepo struct {
	store database.KeyValueStore
}

// NewMoveCarRepository creates a new move-car repository
func NewMoveCarRepository(store database.KeyValueStore) *MoveCarRepo {
	return &MoveCarRepo{store: store}
}

// SetStatus writes the request status with the status TTL
func (r *MoveCarRepo) SetStatus(ctx context.Context, plate string, status models.RequestStatus) error {
	key := fmt.Sprintf(constants.KeyStatus, plate)
	if err := r.store.Set(ctx, key, string(status), constants.StatusTTL); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	return nil
}

// GetStatus reads the request status. The bool is false when no record exists.
func (r *MoveCarRepo) GetStatus(ctx context.Context, plate string) (models.RequestStatus, bool, error) {
	val, found, err := r.get(ctx, fmt.Sprintf(constants.KeyStatus, plate))
	if err != nil || !found {
		return "", false, err
	}
	return models.RequestStatus(val), true, nil
}

// SetRequesterLocation stores the requester's location
func (r *MoveCarRepo) SetRequesterLocation(ctx context.Context, plate string, loc *models.RequesterLocation) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyRequesterLocation, plate), loc, constants.LocationTTL)
}

// GetRequesterLocation returns nil when no location is stored
func (r *MoveCarRepo) GetRequesterLocation(ctx context.Context, plate string) (*models.RequesterLocation, error) {
	var loc models.RequesterLocation
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyRequesterLocation, plate), &loc)
	if err != nil || !found {
		return nil, err
	}
	return &loc, nil
}

// SetOwnerLocation stores the owner's location
func (r *MoveCarRepo) SetOwnerLocation(ctx context.Context, plate string, loc *models.OwnerLocation) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyOwnerLocation, plate), loc, constants.LocationTTL)
}

// DeleteOwnerLocation removes any previously shared owner location
func (r *MoveCarRepo) DeleteOwnerLocation(ctx context.Context, plate string) error {
	if err := r.store.Delete(ctx, fmt.Sprintf(constants.KeyOwnerLocation, plate)); err != nil {
		return fmt.Errorf("failed to delete owner location: %w", err)
	}
	return nil
}

// GetOwnerLocation returns nil when no location is stored
func (r *MoveCarRepo) GetOwnerLocation(ctx context.Context, plate string) (*models.OwnerLocation, error) {
	var loc models.OwnerLocation
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyOwnerLocation, plate), &loc)
	if err != nil || !found {
		return nil, err
	}
	return &loc, nil
}

// SetAllowCall stores the owner's call authorization as "true" or "false"
func (r *MoveCarRepo) SetAllowCall(ctx context.Context, plate string, allow bool) error {
	key := fmt.Sprintf(constants.KeyAllowCall, plate)
	if err := r.store.Set(ctx, key, strconv.FormatBool(allow), constants.AllowCallTTL); err != nil {
		return fmt.Errorf("failed to set allow call: %w", err)
	}
	return nil
}

// ClearAllowCall removes the call authorization
func (r *MoveCarRepo) ClearAllowCall(ctx context.Context, plate string) error {
	if err := r.store.Delete(ctx, fmt.Sprintf(constants.KeyAllowCall, plate)); err != nil {
		return fmt.Errorf("failed to clear allow call: %w", err)
	}
	return nil
}

// GetAllowCall is true only when the stored value is exactly "true"
func (r *MoveCarRepo) GetAllowCall(ctx context.Context, plate string) (bool, error) {
	val, found, err := r.get(ctx, fmt.Sprintf(constants.KeyAllowCall, plate))
	if err != nil || !found {
		return false, err
	}
	return val == "true", nil
}

// SetEscalation stores the notify ledger for the current request cycle
func (r *MoveCarRepo) SetEscalation(ctx context.Context, plate string, rec *models.EscalationRecord) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyEscalation, plate), rec, constants.EscalationTTL)
}

// GetEscalation returns nil when no ledger exists
func (r *MoveCarRepo) GetEscalation(ctx context.Context, plate string) (*models.EscalationRecord, error) {
	var rec models.EscalationRecord
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyEscalation, plate), &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (r *MoveCarRepo) get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.store.Get(ctx, key)
	if errors.Is(err, database.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, true, nil
}

func (r *MoveCarRepo) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *MoveCarRepo) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, found, err := r.get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
