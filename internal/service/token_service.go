package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService emite y valida los tokens de acceso del panel de reportes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// AdminClaims son los claims de un token de acceso admin.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "civic-feedback",
	}
}

// Generate firma un token de acceso para el sujeto admin.
func (s *TokenService) Generate() (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	now := time.Now().UTC()
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// TTL expone la vigencia del token para la respuesta de login.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Parse valida firma, emisor y rol de un token de acceso.
func (s *TokenService) Parse(tokenString string) (AdminClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return AdminClaims{}, ErrTokenInvalid
	}

	var claims AdminClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AdminClaims{}, ErrTokenExpired
		}
		return AdminClaims{}, ErrTokenInvalid
	}

	if claims.Issuer != s.issuer || claims.Subject != "admin" || claims.Role != "admin" {
		return AdminClaims{}, ErrTokenInvalid
	}
	return claims, nil
}
