package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
)

// Issuer is the iss claim of every access token
const Issuer = "prenderia"

// Claims represents the JWT claims.
// The JSON names are the ones the admin client decodes from the payload.
type Claims struct {
	Username       string `json:"username"`
	Role           string `json:"role"`
	Identificacion string `json:"identificacion"`
	IDUsuario      uint   `json:"id_usuario"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a new access token
func GenerateAccessToken(idUsuario uint, identificacion, username, role, secret string, expiryMinutes int) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:       username,
		Role:           role,
		Identificacion: identificacion,
		IDUsuario:      idUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   identificacion,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken validates an access token and returns claims
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// DecodeUnverified reads the client-facing claims from the payload segment only.
// The header and signature are ignored; callers must not make trust
// decisions based on the result. Registered claims are not decoded, and the
// two ID claims are accepted as either strings or numbers.
func DecodeUnverified(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, ErrTokenMalformed
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, ErrTokenMalformed
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var m jwt.MapClaims
	if err := dec.Decode(&m); err != nil || m == nil {
		return nil, ErrTokenMalformed
	}

	return &Claims{
		Username:       stringClaim(m["username"]),
		Role:           stringClaim(m["role"]),
		Identificacion: stringClaim(m["identificacion"]),
		IDUsuario:      uintClaim(m["id_usuario"]),
	}, nil
}

func stringClaim(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	}
	return ""
}

func uintClaim(v interface{}) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(stringClaim(v)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
