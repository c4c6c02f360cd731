package domain

import "regexp"

// Role represents user role in the system
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCliente Role = "CLIENTE"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCliente
}

// LoanStatus is the estado of a préstamo
type LoanStatus string

const (
	LoanActivo   LoanStatus = "ACTIVO"
	LoanInactivo LoanStatus = "INACTIVO"
	LoanPagado   LoanStatus = "PAGADO"
)

// Valid reports whether s is a known loan status
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActivo, LoanInactivo, LoanPagado:
		return true
	}
	return false
}

// CanTransitionTo reports whether a loan may move from s to next.
// PAGADO is terminal; ACTIVO and INACTIVO may swap or move forward to PAGADO.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == LoanPagado {
		return next == LoanPagado
	}
	return true
}

// InterestStatus is the estado of an interés installment
type InterestStatus string

const (
	InterestPendiente InterestStatus = "PENDIENTE"
	InterestPagado    InterestStatus = "PAGADO"
)

// Valid reports whether s is a known installment status
func (s InterestStatus) Valid() bool {
	return s == InterestPendiente || s == InterestPagado
}

// ItemStatus is the estado of an artículo
type ItemStatus string

const (
	ItemEmpenado ItemStatus = "EMPENADO"
	ItemDevuelto ItemStatus = "DEVUELTO"
	ItemVendido  ItemStatus = "VENDIDO"
)

// Valid reports whether s is a known item status
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemEmpenado, ItemDevuelto, ItemVendido:
		return true
	}
	return false
}

var identificacionPattern = regexp.MustCompile(`^\d+$`)

// ValidIdentificacion reports whether id is an all-numeric identification number
func ValidIdentificacion(id string) bool {
	return identificacionPattern.MatchString(id)
}
