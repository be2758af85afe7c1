package service

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminService valida la credencial del panel y emite tokens de acceso.
type AdminService struct {
	logger       *zap.Logger
	passwordHash string
	tokens       *TokenService
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotConfigured = errors.New("admin auth not configured")
)

func NewAdminService(logger *zap.Logger, passwordHash string, tokens *TokenService) *AdminService {
	return &AdminService{
		logger:       logger,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

// TokenGrant es la respuesta de un login exitoso.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login compara la contraseña contra el hash bcrypt configurado y devuelve un
// token de acceso.
func (s *AdminService) Login(password string) (TokenGrant, error) {
	if s.passwordHash == "" || s.tokens == nil {
		return TokenGrant{}, ErrAdminNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return TokenGrant{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate()
	if err != nil {
		return TokenGrant{}, err
	}
	return TokenGrant{
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}
