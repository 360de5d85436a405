package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"
)

// Claims are the identity claims the service reads from a bearer token.
// The subject is the user id.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 bearer tokens issued by the identity provider
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier; issuer and audience are checked only when configured
func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}

	return &JWTVerifier{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(options...),
	}, nil
}

// Verify parses the token and returns the caller it identifies
func (v *JWTVerifier) Verify(tokenString string) (entity.Principal, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return entity.Principal{}, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	return entity.Principal{
		UserID: claims.Subject,
		Name:   claims.Name,
		Phone:  claims.Phone,
		Role:   entity.ParseRole(claims.Role),
	}, nil
}

// Issuer signs tokens with the shared secret; used by the dev token tool and tests
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewIssuer creates an Issuer for the configured secret, issuer and audience
func NewIssuer(cfg config.AuthConfig) *Issuer {
	return &Issuer{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

// Issue signs a token for p that expires after ttl
func (i *Issuer) Issue(p entity.Principal, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Name:  p.Name,
		Phone: p.Phone,
		Role:  string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if i.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
