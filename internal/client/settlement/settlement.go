// Package settlement drives loan installments to paid and settles the loan
// once none remain pending.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"prenderia/internal/client/api"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Errors returned by Workflow.
var (
	ErrNotLoaded           = errors.New("no loan loaded")
	ErrInstallmentNotFound = errors.New("installment does not belong to the loaded loan")
	ErrLoanSettled         = errors.New("loan is already settled")
)

// State of the loaded loan.
type State string

// Loan states.
const (
	StateOpen    State = "OPEN"
	StateSettled State = "SETTLED"
)

// Backend is the subset of the REST client the workflow needs.
type Backend interface {
	ListIntereses(ctx context.Context, prestamoID uint) ([]api.Interes, error)
	UpdateInteresEstado(ctx context.Context, id uint, estado string) (*api.Interes, error)
	UpdatePrestamoEstado(ctx context.Context, id uint, estado string) (*api.Prestamo, error)
}

// Outcome reports what MarkInstallmentPaid changed on the backend.
type Outcome struct {
	InstallmentPaid bool
	LoanSettled     bool
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithMaxRetries bounds the retries of one settlement step.
func WithMaxRetries(n uint64) Option {
	return func(w *Workflow) { w.maxRetries = n }
}

// WithBackOff sets the delay policy between retries.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(w *Workflow) { w.newBackOff = newBackOff }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *Workflow) { w.log = log }
}

// Workflow holds a local copy of one loan and its installments.
// It is safe for concurrent use; operations are serialized.
type Workflow struct {
	backend    Backend
	log        *zap.Logger
	maxRetries uint64
	newBackOff func() backoff.BackOff

	mu           sync.Mutex
	loan         *api.Prestamo
	installments []api.Interes
}

// New creates a Workflow on top of backend.
func New(backend Backend, opts ...Option) *Workflow {
	w := &Workflow{
		backend:    backend,
		log:        zap.NewNop(),
		maxRetries: 3,
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Load replaces the held loan, fetches its installments in backend order and,
// when every installment is already paid but the loan is not, settles the loan.
// If the installments cannot be fetched the previously held loan is kept.
func (w *Workflow) Load(ctx context.Context, loan api.Prestamo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	prevLoan, prevInstallments := w.loan, w.installments

	loan.Intereses = nil
	w.loan = &loan
	w.installments = nil

	err := w.retry(ctx, "load", func() error {
		return w.refresh(ctx)
	})
	if err != nil {
		w.loan, w.installments = prevLoan, prevInstallments
		return fmt.Errorf("loading installments of loan %d: %w", loan.ID, err)
	}

	if len(w.installments) > 0 && w.pending() == 0 && w.loan.Estado != api.EstadoPagado {
		w.log.Info("all installments paid, settling loan", zap.Uint("prestamo", loan.ID))
		err := w.retry(ctx, "settle", func() error {
			return w.settle(ctx)
		})
		if err != nil {
			return fmt.Errorf("settling loan %d: %w", loan.ID, err)
		}
	}
	return nil
}

// MarkInstallmentPaid pays one installment and settles the loan when it was
// the last one pending. An installment already paid locally is not sent again.
// On error the local copy reflects whatever the backend acknowledged.
func (w *Workflow) MarkInstallmentPaid(ctx context.Context, installmentID uint) (Outcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out Outcome
	if w.loan == nil {
		return out, ErrNotLoaded
	}
	if w.state() == StateSettled {
		return out, ErrLoanSettled
	}
	if w.indexOf(installmentID) < 0 {
		return out, ErrInstallmentNotFound
	}

	err := w.retry(ctx, "mark installment paid", func() error {
		if i := w.indexOf(installmentID); i >= 0 && w.installments[i].Estado != api.EstadoPagado {
			if _, err := w.backend.UpdateInteresEstado(ctx, installmentID, api.EstadoPagado); err != nil {
				return err
			}
			w.installments[i].Estado = api.EstadoPagado
			out.InstallmentPaid = true
		}

		if err := w.refresh(ctx); err != nil {
			return err
		}
		if w.pending() > 0 || w.loan.Estado == api.EstadoPagado {
			return nil
		}
		if err := w.settle(ctx); err != nil {
			return err
		}
		out.LoanSettled = true
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("marking installment %d paid: %w", installmentID, err)
	}
	return out, nil
}

// State reports OPEN or SETTLED for the loaded loan.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state()
}

// Loan returns a copy of the held loan, or nil before Load.
func (w *Workflow) Loan() *api.Prestamo {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loan == nil {
		return nil
	}
	l := *w.loan
	return &l
}

// Installments returns a copy of the held installments in backend order.
func (w *Workflow) Installments() []api.Interes {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]api.Interes, len(w.installments))
	copy(out, w.installments)
	return out
}

// Pending counts the installments still PENDIENTE.
func (w *Workflow) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending()
}

func (w *Workflow) state() State {
	if w.loan != nil && w.loan.Estado == api.EstadoPagado && w.pending() == 0 {
		return StateSettled
	}
	return StateOpen
}

func (w *Workflow) pending() int {
	n := 0
	for _, in := range w.installments {
		if in.Estado != api.EstadoPagado {
			n++
		}
	}
	return n
}

func (w *Workflow) indexOf(id uint) int {
	for i, in := range w.installments {
		if in.ID == id {
			return i
		}
	}
	return -1
}

// refresh replaces the local installments with the backend's.
func (w *Workflow) refresh(ctx context.Context) error {
	installments, err := w.backend.ListIntereses(ctx, w.loan.ID)
	if err != nil {
		return err
	}
	w.installments = installments
	return nil
}

func (w *Workflow) settle(ctx context.Context) error {
	updated, err := w.backend.UpdatePrestamoEstado(ctx, w.loan.ID, api.EstadoPagado)
	if err != nil {
		return err
	}
	w.loan.Estado = api.EstadoPagado
	if updated != nil && updated.Estado != "" {
		w.loan.Estado = updated.Estado
	}
	return nil
}

// retry runs fn until it succeeds, fails permanently or runs out of attempts.
// Client errors are permanent; server errors and transport failures are retried.
func (w *Workflow) retry(ctx context.Context, step string, fn func() error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(w.newBackOff(), w.maxRetries), ctx)
	return backoff.RetryNotify(
		func() error {
			err := fn()
			if err != nil && !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		b,
		func(err error, next time.Duration) {
			w.log.Warn("settlement step failed, retrying",
				zap.String("step", step),
				zap.Error(err),
				zap.Duration("next", next),
			)
		},
	)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}
