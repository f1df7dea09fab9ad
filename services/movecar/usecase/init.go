package usecase

import (
	"time"

	"github.com/piresc/movecar/internal/pkg/i18n"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/services/movecar"
	"github.com/piresc/movecar/services/movecar/escalation"
)

// MoveCarUC implements the move-car coordination engine
type MoveCarUC struct {
	cfg      *models.Config
	registry movecar.CarRegistry
	repo     movecar.MoveCarRepo
	pushGW   movecar.PushGW
	eventGW  movecar.EventGW
	catalog  *i18n.Catalog
	policy   escalation.Policy

	now   func() time.Time
	sleep func(time.Duration)
}

// NewMoveCarUC creates a new move-car use case
func NewMoveCarUC(
	cfg *models.Config,
	registry movecar.CarRegistry,
	repo movecar.MoveCarRepo,
	pushGW movecar.PushGW,
	eventGW movecar.EventGW,
	catalog *i18n.Catalog,
) *MoveCarUC {
	policy := escalation.DefaultPolicy()
	if cfg.Escalation.NotifyDelay > 0 {
		policy.NoLocationDelay = cfg.Escalation.NotifyDelay
	}

	return &MoveCarUC{
		cfg:      cfg,
		registry: registry,
		repo:     repo,
		pushGW:   pushGW,
		eventGW:  eventGW,
		catalog:  catalog,
		policy:   policy,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}
