package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/everafter/planner-api/internal/core/domain"
)

// TokenService mints and validates HS256-signed identity tokens. Claims carry
// the principal id in "sub" and the principal kind in a dedicated "kind"
// claim; tokens from older deployments encode guests as a "guest_<id>" sub
// with no kind claim and are still accepted.
//
// A zero TTL produces non-expiring tokens, matching the current deployment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(ref domain.PrincipalRef) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(ref.ID, 10),
		"kind": string(ref.Kind),
		"iat":  time.Now().Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (domain.PrincipalRef, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.PrincipalRef{}, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return domain.PrincipalRef{}, domain.ErrInvalidToken
	}

	kind, ok := claims["kind"].(string)
	if !ok {
		// Legacy token: principal kind is encoded in the sub prefix.
		return domain.ParsePrincipalRef(sub)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return domain.PrincipalRef{}, domain.ErrInvalidToken
	}

	switch domain.PrincipalKind(kind) {
	case domain.KindOrganizer, domain.KindGuest:
		return domain.PrincipalRef{Kind: domain.PrincipalKind(kind), ID: id}, nil
	default:
		return domain.PrincipalRef{}, domain.ErrInvalidToken
	}
}
