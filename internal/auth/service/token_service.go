package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	apperrors "github.com/cargoconnect/api/internal/errors"
)

// accessClaims is the claim set carried by access tokens. RegisteredClaims
// contributes jti, sub, exp and iat.
type accessClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HMAC-SHA-256 signed JWTs.
// The signing key is injected at construction from startup configuration
// and never mutated afterwards.
type tokenService struct {
	signingKey []byte
	expiration time.Duration
}

// NewTokenService creates a TokenService signing with the given symmetric
// key and issuing tokens with the given lifetime.
func NewTokenService(signingKey string, expiration time.Duration) TokenService {
	return &tokenService{
		signingKey: []byte(signingKey),
		expiration: expiration,
	}
}

// IssueAccessToken signs a new HS256 token for the principal.
func (s *tokenService) IssueAccessToken(
	principal *authDomain.Principal,
) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiration)

	claims := accessClaims{
		Email: principal.Email,
		Name:  principal.Name,
		Role:  string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Subject:   strconv.FormatInt(principal.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// ValidateAccessToken verifies signature, algorithm, and lifetime.
func (s *tokenService) ValidateAccessToken(token string) (*authDomain.Principal, error) {
	claims, err := s.parse(token, true)
	if err != nil {
		return nil, err
	}
	return principalFromClaims(claims)
}

// ParseExpiredToken verifies signature and algorithm while skipping the
// lifetime check, then requires the token to actually be expired. Accepting
// a still-valid token here would let an attacker holding a live pair force
// needless rotations.
func (s *tokenService) ParseExpiredToken(token string) (*authDomain.Principal, error) {
	claims, err := s.parse(token, false)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt == nil {
		return nil, authDomain.ErrTokenInvalid
	}
	if claims.ExpiresAt.After(time.Now().UTC()) {
		return nil, authDomain.ErrTokenNotExpired
	}

	return principalFromClaims(claims)
}

// parse verifies the compact token and returns its claims. The signing
// method must be exactly HS256: accepting any other algorithm is a forgery
// vector. All library errors normalize to domain errors.
func (s *tokenService) parse(token string, checkLifetime bool) (*accessClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if !checkLifetime {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, authDomain.ErrTokenInvalid
		}
		return s.signingKey, nil
	}, options...)
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, authDomain.ErrTokenInvalid
	}

	return claims, nil
}

// principalFromClaims maps verified claims back to a Principal. Ownership
// links are not carried in the token; they are loaded fresh per request by
// the authentication middleware.
func principalFromClaims(claims *accessClaims) (*authDomain.Principal, error) {
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, authDomain.ErrTokenInvalid
	}

	return &authDomain.Principal{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   authDomain.ParseRole(claims.Role),
	}, nil
}
