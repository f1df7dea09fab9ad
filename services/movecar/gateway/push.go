package gateway

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	httppkg "github.com/piresc/movecar/internal/pkg/http"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/internal/utils"
	"github.com/piresc/movecar/services/movecar"
)

// BarkPushGW delivers notifications through a Bark-compatible GET endpoint:
// {endpoint}/{title}/{body}?group=&level=&call=1&sound=&icon=&url=
type BarkPushGW struct {
	client *httppkg.Client
	cfg    models.PushConfig
}

// NewBarkPushGW creates a push gateway
func NewBarkPushGW(client *httppkg.Client, cfg models.PushConfig) *BarkPushGW {
	return &BarkPushGW{client: client, cfg: cfg}
}

// BuildURL renders the delivery URL for a car
func (g *BarkPushGW) BuildURL(car models.CarConfig, msg movecar.PushMessage) string {
	query := url.Values{}
	query.Set("group", g.cfg.Group)
	query.Set("level", g.cfg.Level)
	query.Set("call", "1")
	query.Set("sound", g.cfg.Sound)
	query.Set("icon", g.cfg.IconURL)
	if msg.ConfirmURL != "" {
		query.Set("url", msg.ConfirmURL)
	}

	return fmt.Sprintf("%s/%s/%s?%s",
		utils.TrimTrailingSlash(car.NotifyEndpoint),
		url.PathEscape(msg.Title),
		url.PathEscape(msg.Body),
		query.Encode(),
	)
}

// Send performs the delivery. Transport errors and non-2xx responses are
// reported as ErrDeliveryFailed and never retried.
func (g *BarkPushGW) Send(ctx context.Context, car models.CarConfig, msg movecar.PushMessage) error {
	resp, err := g.client.Get(ctx, g.BuildURL(car, msg))
	if err != nil {
		logger.Warn("Push delivery request failed", logger.Plate(car.Plate), logger.Err(err))
		return fmt.Errorf("%w: %v", movecar.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Push endpoint rejected notification",
			logger.Plate(car.Plate),
			logger.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: endpoint returned %d", movecar.ErrDeliveryFailed, resp.StatusCode)
	}

	logger.Info("Push notification delivered", logger.Plate(car.Plate))
	return nil
}

// ConfirmURL builds the owner confirmation deep-link for a plate
func ConfirmURL(baseURL, confirmPath, plate string) string {
	return strings.TrimRight(baseURL, "/") + confirmPath + "?plate=" + url.QueryEscape(plate)
}
