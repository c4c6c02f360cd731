package api

import (
	"context"
	"net/http"
)

// ListUsuarios lists every account. Admin only.
func (c *Client) ListUsuarios(ctx context.Context) ([]Usuario, error) {
	var out []Usuario
	if err := c.do(ctx, http.MethodGet, "/usuarios", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUsuario registers an account.
func (c *Client) CreateUsuario(ctx context.Context, in UsuarioInput) (*Usuario, error) {
	var out Usuario
	if err := c.do(ctx, http.MethodPost, "/usuarios", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUsuario changes an account.
func (c *Client) UpdateUsuario(ctx context.Context, id uint, in UsuarioUpdate) (*Usuario, error) {
	var out Usuario
	if err := c.do(ctx, http.MethodPut, idPath("/usuarios/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUsuario removes an account.
func (c *Client) DeleteUsuario(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("/usuarios/%d", id), nil, nil, nil)
}

// GetMe fetches the calling account.
func (c *Client) GetMe(ctx context.Context) (*Usuario, error) {
	var out Usuario
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe changes the contact data of the calling account.
func (c *Client) UpdateMe(ctx context.Context, in MeUpdate) (*Usuario, error) {
	var out Usuario
	if err := c.do(ctx, http.MethodPut, "/me", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
