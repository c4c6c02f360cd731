package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reconcileTimeout bounds a single reconciler run
const reconcileTimeout = time.Minute

// Reconciler periodically settles préstamos whose installments are all PAGADO
type Reconciler struct {
	prestamos *PrestamoService
	cron      *cron.Cron
	log       *zap.Logger
}

// NewReconciler creates a reconciler that runs on the given cron schedule
func NewReconciler(prestamos *PrestamoService, schedule string, log *zap.Logger) (*Reconciler, error) {
	r := &Reconciler{
		prestamos: prestamos,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:       log,
	}
	if _, err := r.cron.AddFunc(schedule, r.RunOnce); err != nil {
		return nil, err
	}
	return r, nil
}

// Start launches the scheduler in its own goroutine
func (r *Reconciler) Start() {
	r.cron.Start()
	r.log.Info("reconciler started")
}

// Stop stops the scheduler and waits for a running job to finish
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("reconciler stopped")
}

// RunOnce performs a single reconciliation pass
func (r *Reconciler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	n, err := r.prestamos.Reconcile(ctx)
	if err != nil {
		r.log.Error("reconcile failed", zap.Error(err))
		return
	}
	if n > 0 {
		r.log.Info("prestamos settled by reconciler", zap.Int("count", n))
	}
}
