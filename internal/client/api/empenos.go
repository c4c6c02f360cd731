package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListEmpenos lists every empeño with its usuario and items.
func (c *Client) ListEmpenos(ctx context.Context) ([]Empeno, error) {
	var out []Empeno
	if err := c.do(ctx, http.MethodGet, "/empenos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmpeno registers an empeño with its items.
func (c *Client) CreateEmpeno(ctx context.Context, in EmpenoInput) (*Empeno, error) {
	var out Empeno
	if err := c.do(ctx, http.MethodPost, "/empenos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmpeno replaces the header fields of an empeño and appends the
// items of in that have no ID yet.
func (c *Client) UpdateEmpeno(ctx context.Context, id uint, in EmpenoInput) (*Empeno, error) {
	var out Empeno
	if err := c.do(ctx, http.MethodPut, idPath("/empenos/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListArticulos lists items, optionally filtered by estado.
func (c *Client) ListArticulos(ctx context.Context, estado string) ([]Articulo, error) {
	var q url.Values
	if estado != "" {
		q = url.Values{"estado": {estado}}
	}
	var out []Articulo
	if err := c.do(ctx, http.MethodGet, "/articulos", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateArticulo adds an item to an empeño.
func (c *Client) CreateArticulo(ctx context.Context, in NewArticulo) (*Articulo, error) {
	var out Articulo
	if err := c.do(ctx, http.MethodPost, "/articulos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTiposArticulos lists the item categories.
func (c *Client) ListTiposArticulos(ctx context.Context) ([]TipoArticulo, error) {
	var out []TipoArticulo
	if err := c.do(ctx, http.MethodGet, "/tipos-articulos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTipoArticulo adds an item category.
func (c *Client) CreateTipoArticulo(ctx context.Context, nombre string) (*TipoArticulo, error) {
	var out TipoArticulo
	if err := c.do(ctx, http.MethodPost, "/tipos-articulos", nil, tipoRequest{Nombre: nombre}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
