package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/domain/entities"
)

// JWTService signs and verifies session tokens. The two identity realms use
// independent secrets, so an admin token can never verify as a user token.
type JWTService struct {
	secrets map[entities.Realm][]byte
	ttl     time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid session token")

func NewJWTService(adminSecret, userSecret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secrets: map[entities.Realm][]byte{
			entities.RealmAdmin: []byte(adminSecret),
			entities.RealmUser:  []byte(userSecret),
		},
		ttl: ttl,
	}
}

func (s *JWTService) TTL() time.Duration { return s.ttl }

// Issue returns a signed token for the given realm and subject.
func (s *JWTService) Issue(realm entities.Realm, subject uuid.UUID) (string, error) {
	secret, ok := s.secrets[realm]
	if !ok || len(secret) == 0 {
		return "", errors.New("no secret configured for realm " + string(realm))
	}
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    "ecotoken",
			Audience:  jwt.ClaimStrings{string(realm)},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse verifies a token against the realm's secret and returns the session
// it carries. Any malformed, tampered or expired token yields ErrInvalidToken.
func (s *JWTService) Parse(realm entities.Realm, tokenStr string) (*entities.Session, error) {
	secret, ok := s.secrets[realm]
	if !ok || len(secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience(string(realm)))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &entities.Session{
		Realm:     realm,
		Subject:   subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
