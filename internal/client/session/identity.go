package session

import (
	"prenderia/internal/pkg/jwt"
)

// Role is the role claim of a session.
type Role string

// Known roles.
const (
	RoleAdmin   Role = "ADMIN"
	RoleCliente Role = "CLIENTE"
)

// Identity is derived from the token payload only; it is never fetched or verified.
// DisplayName and Role are nil when the payload could not be decoded.
type Identity struct {
	SubjectID   uint
	DisplayName *string
	Role        *Role
	ExternalID  string
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role != nil && *id.Role == RoleAdmin
}

// decodeIdentity reads the identity from the payload segment of token.
// The signature is not checked; the issuing server is the trust boundary.
func decodeIdentity(token string) (*Identity, error) {
	claims, err := jwt.DecodeUnverified(token)
	if err != nil {
		return nil, err
	}

	id := &Identity{
		SubjectID:  claims.IDUsuario,
		ExternalID: claims.Identificacion,
	}
	if claims.Username != "" {
		name := claims.Username
		id.DisplayName = &name
	}
	switch r := Role(claims.Role); r {
	case RoleAdmin, RoleCliente:
		id.Role = &r
	}
	return id, nil
}

func (id *Identity) clone() *Identity {
	if id == nil {
		return nil
	}
	out := *id
	if id.DisplayName != nil {
		name := *id.DisplayName
		out.DisplayName = &name
	}
	if id.Role != nil {
		role := *id.Role
		out.Role = &role
	}
	return &out
}
