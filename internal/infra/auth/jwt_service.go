// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/json"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService implements TokenService with HS256-signed JWTs. The fixture
// backend issues these; the session manager also uses ExpiryOf to bound
// cookie lifetimes for tokens from the real backend.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.Session.MaxAge,
	}, nil
}

type sessionClaims struct {
	User json.RawMessage `json:"user"`
	jwt.RegisteredClaims
}

// Issue creates a signed token embedding the user identity record.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return "", errors.Wrap(err, "marshal user claim")
	}

	now := time.Now()
	claims := sessionClaims{
		User: raw,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   entity.FormatID(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Inspect validates a token this service issued and returns the embedded user.
func (s *jwtService) Inspect(tokenString string) (*entity.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	user := &entity.User{}
	if err := json.Unmarshal(claims.User, user); err != nil {
		return nil, errors.Wrap(err, "decode user claim")
	}

	return user, nil
}

// ExpiryOf extracts the exp claim without verifying the signature. Opaque
// or claimless tokens yield the zero time.
func (s *jwtService) ExpiryOf(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
