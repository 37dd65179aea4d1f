package worker

import (
	"context"
	"time"

	"package-intake/internal/logger"
	"package-intake/internal/usecase/shipment"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DistinctRefresher periodically reloads the cached distinct scan-user and
// status lists so rows written by other systems against the same tables show
// up without waiting for a local write.
type DistinctRefresher struct {
	shipments *shipment.Service
	spec      string
	cron      *cron.Cron
}

func NewDistinctRefresher(shipments *shipment.Service, spec string) *DistinctRefresher {
	return &DistinctRefresher{
		shipments: shipments,
		spec:      spec,
		cron:      cron.New(),
	}
}

func (r *DistinctRefresher) Start() error {
	_, err := r.cron.AddFunc(r.spec, r.refresh)
	if err != nil {
		return err
	}

	r.cron.Start()
	logger.Info("distinct value refresher started", zap.String("schedule", r.spec))
	return nil
}

// Stop halts the schedule and waits for an in-flight refresh to finish.
func (r *DistinctRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.Info("distinct value refresher stopped")
}

func (r *DistinctRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.shipments.RefreshDistinctValues(ctx); err != nil {
		logger.Error("distinct value refresh failed", zap.Error(err))
		return
	}

	logger.Debug("distinct values refreshed")
}
