package api

import (
	"context"
	"net/http"
	"net/url"

	"prenderia/internal/client/session"
)

// ListPrestamos lists every loan for an admin and only the caller's own otherwise.
func (c *Client) ListPrestamos(ctx context.Context, role session.Role) ([]Prestamo, error) {
	path := "/prestamos/mios"
	if role == session.RoleAdmin {
		path = "/prestamos"
	}
	var out []Prestamo
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPrestamosByEstado lists loans in one estado. Admin only.
func (c *Client) ListPrestamosByEstado(ctx context.Context, estado string) ([]Prestamo, error) {
	var out []Prestamo
	q := url.Values{"estado": {estado}}
	if err := c.do(ctx, http.MethodGet, "/prestamos", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPrestamo fetches one loan with its empeño and installments.
func (c *Client) GetPrestamo(ctx context.Context, id uint) (*Prestamo, error) {
	var out Prestamo
	if err := c.do(ctx, http.MethodGet, idPath("/prestamos/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePrestamo creates a loan; the backend generates its installments.
func (c *Client) CreatePrestamo(ctx context.Context, in PrestamoInput) (*Prestamo, error) {
	var out Prestamo
	if err := c.do(ctx, http.MethodPost, "/prestamos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePrestamoEstado moves a loan to estado.
func (c *Client) UpdatePrestamoEstado(ctx context.Context, id uint, estado string) (*Prestamo, error) {
	var out Prestamo
	err := c.do(ctx, http.MethodPut, idPath("/prestamos/%d/estado", id), nil, estadoRequest{Estado: estado}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIntereses lists a loan's installments in backend order.
func (c *Client) ListIntereses(ctx context.Context, prestamoID uint) ([]Interes, error) {
	var out []Interes
	if err := c.do(ctx, http.MethodGet, idPath("/intereses/prestamo/%d", prestamoID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInteresEstado moves an installment to estado.
func (c *Client) UpdateInteresEstado(ctx context.Context, id uint, estado string) (*Interes, error) {
	var out Interes
	err := c.do(ctx, http.MethodPut, idPath("/intereses/%d/estado", id), nil, estadoRequest{Estado: estado}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
