package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"prenderia/internal/client/api"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is an in-memory system of record served over HTTP.
type backend struct {
	mu        sync.Mutex
	loan      api.Prestamo
	intereses []api.Interes
	puts      []string

	// failures[path] is the list of statuses returned before the call succeeds
	failures map[string][]int
}

func newBackend(loanEstado string, estados ...string) *backend {
	b := &backend{
		loan:     api.Prestamo{ID: 10, EmpenoID: 1, Valor: 1000, Estado: loanEstado},
		failures: map[string][]int{},
	}
	// intentionally not ordered by month
	for i, e := range estados {
		b.intereses = append(b.intereses, api.Interes{ID: uint(100 + i), PrestamoID: 10, Mes: len(estados) - i, Valor: 50, Estado: e})
	}
	return b
}

func (b *backend) failNext(path string, statuses ...int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = append(b.failures[path], statuses...)
}

func (b *backend) putCalls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.puts...)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api")
	if fails := b.failures[path]; len(fails) > 0 {
		b.failures[path] = fails[1:]
		w.WriteHeader(fails[0])
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "injected"})
		return
	}

	var body struct {
		Estado string `json:"estado"`
	}
	if r.Method == http.MethodPut {
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.puts = append(b.puts, path+"="+body.Estado)
	}

	switch {
	case r.Method == http.MethodGet && path == fmt.Sprintf("/intereses/prestamo/%d", b.loan.ID):
		_ = json.NewEncoder(w).Encode(b.intereses)
	case r.Method == http.MethodPut && path == fmt.Sprintf("/prestamos/%d/estado", b.loan.ID):
		b.loan.Estado = body.Estado
		_ = json.NewEncoder(w).Encode(b.loan)
	case r.Method == http.MethodPut && strings.HasPrefix(path, "/intereses/"):
		id, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(path, "/intereses/"), "/estado"))
		for i := range b.intereses {
			if b.intereses[i].ID == uint(id) {
				b.intereses[i].Estado = body.Estado
				_ = json.NewEncoder(w).Encode(b.intereses[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func setup(t *testing.T, b *backend) *Workflow {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL+"/api", nil, 0)
	require.NoError(t, err)

	return New(c,
		WithMaxRetries(2),
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	)
}

func load(t *testing.T, w *Workflow, b *backend) {
	t.Helper()
	b.mu.Lock()
	loan := b.loan
	b.mu.Unlock()
	require.NoError(t, w.Load(context.Background(), loan))
}

func TestLoad_KeepsBackendOrder(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente, api.EstadoPagado, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	got := w.Installments()
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].Mes, got[1].Mes, got[2].Mes})
	assert.Equal(t, 2, w.Pending())
	assert.Equal(t, StateOpen, w.State())
	assert.Empty(t, b.putCalls())
}

func TestMarkInstallmentPaid_LastOneSettlesLoan(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPagado, api.EstadoPagado, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	out, err := w.MarkInstallmentPaid(context.Background(), 102)
	require.NoError(t, err)
	assert.Equal(t, Outcome{InstallmentPaid: true, LoanSettled: true}, out)

	assert.Equal(t, []string{"/intereses/102/estado=PAGADO", "/prestamos/10/estado=PAGADO"}, b.putCalls())
	assert.Equal(t, StateSettled, w.State())
	assert.Equal(t, api.EstadoPagado, w.Loan().Estado)
	assert.Equal(t, 0, w.Pending())
}

func TestMarkInstallmentPaid_OthersPendingStaysOpen(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, Outcome{InstallmentPaid: true}, out)

	assert.Equal(t, []string{"/intereses/100/estado=PAGADO"}, b.putCalls())
	assert.Equal(t, StateOpen, w.State())
	assert.Equal(t, api.EstadoActivo, w.Loan().Estado)
	assert.Equal(t, api.EstadoPagado, w.Installments()[0].Estado)
}

func TestMarkInstallmentPaid_UsesBackendInstallmentSet(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	// another operator pays the second installment behind our back
	b.mu.Lock()
	b.intereses[1].Estado = api.EstadoPagado
	b.mu.Unlock()

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	assert.True(t, out.LoanSettled)
	assert.Equal(t, StateSettled, w.State())
}

func TestMarkInstallmentPaid_AlreadyPaidSkipsPut(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPagado, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, Outcome{}, out)
	assert.Empty(t, b.putCalls())
	assert.Equal(t, StateOpen, w.State())
}

func TestMarkInstallmentPaid_Errors(t *testing.T) {
	w := New(nil)
	_, err := w.MarkInstallmentPaid(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotLoaded)

	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w = setup(t, b)
	load(t, w, b)

	_, err = w.MarkInstallmentPaid(context.Background(), 999)
	assert.ErrorIs(t, err, ErrInstallmentNotFound)

	_, err = w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	require.Equal(t, StateSettled, w.State())

	_, err = w.MarkInstallmentPaid(context.Background(), 100)
	assert.ErrorIs(t, err, ErrLoanSettled)
	assert.Len(t, b.putCalls(), 2)
}

func TestLoad_ReconcilesFullyPaidLoan(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPagado, api.EstadoPagado)
	w := setup(t, b)
	load(t, w, b)

	assert.Equal(t, []string{"/prestamos/10/estado=PAGADO"}, b.putCalls())
	assert.Equal(t, StateSettled, w.State())
}

func TestLoad_FetchFailureKeepsPreviousState(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w := setup(t, b)

	b.failNext("/intereses/prestamo/10", http.StatusNotFound)
	err := w.Load(context.Background(), b.loan)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrNotFound))
	assert.Nil(t, w.Loan())

	_, err = w.MarkInstallmentPaid(context.Background(), 100)
	assert.ErrorIs(t, err, ErrNotLoaded)

	load(t, w, b)
	other := b.loan
	other.ID = 11
	require.Error(t, w.Load(context.Background(), other))

	assert.Equal(t, uint(10), w.Loan().ID)
	require.Len(t, w.Installments(), 1)
	assert.Equal(t, uint(100), w.Installments()[0].ID)
}

func TestLoad_NoInstallmentsDoesNotSettle(t *testing.T) {
	b := newBackend(api.EstadoActivo)
	w := setup(t, b)
	load(t, w, b)

	assert.Empty(t, b.putCalls())
	assert.Equal(t, StateOpen, w.State())
}

func TestMarkInstallmentPaid_RetriesServerErrors(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	b.failNext("/prestamos/10/estado", http.StatusServiceUnavailable)

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, Outcome{InstallmentPaid: true, LoanSettled: true}, out)
	// the installment is not sent again when only the loan update failed
	assert.Equal(t, []string{
		"/intereses/100/estado=PAGADO",
		"/prestamos/10/estado=PAGADO",
	}, b.putCalls())
}

func TestMarkInstallmentPaid_ClientErrorIsSurfaced(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	b.failNext("/intereses/100/estado", http.StatusForbidden)

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrForbidden))
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, api.EstadoPendiente, w.Installments()[0].Estado)
	assert.Equal(t, StateOpen, w.State())
}

func TestMarkInstallmentPaid_CascadeFailureKeepsAcknowledgedState(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	b.failNext("/prestamos/10/estado", http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError)

	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.Error(t, err)
	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	assert.Equal(t, Outcome{InstallmentPaid: true}, out)
	assert.Equal(t, api.EstadoPagado, w.Installments()[0].Estado)
	assert.Equal(t, api.EstadoActivo, w.Loan().Estado)
	assert.Equal(t, StateOpen, w.State())

	// a second attempt only needs the loan update
	out, err = w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, Outcome{LoanSettled: true}, out)
	assert.Equal(t, StateSettled, w.State())
}

func TestMarkInstallmentPaid_Idempotent(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	_, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)
	out, err := w.MarkInstallmentPaid(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, []string{"/intereses/100/estado=PAGADO"}, b.putCalls())
}

func TestCopiesAreDetached(t *testing.T) {
	b := newBackend(api.EstadoActivo, api.EstadoPendiente)
	w := setup(t, b)
	load(t, w, b)

	w.Installments()[0].Estado = api.EstadoPagado
	w.Loan().Estado = api.EstadoPagado

	assert.Equal(t, api.EstadoPendiente, w.Installments()[0].Estado)
	assert.Equal(t, api.EstadoActivo, w.Loan().Estado)
}
