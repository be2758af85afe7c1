package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAdminLoginSuccess(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAdminService(zap.NewNop(), bcryptHash(t, "secret123"), tokens)

	grant, err := svc.Login("secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if grant.AccessToken == "" {
		t.Error("empty access token")
	}
	if grant.ExpiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", grant.ExpiresIn)
	}
	if _, err := tokens.Parse(grant.AccessToken); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAdminService(zap.NewNop(), bcryptHash(t, "secret123"), tokens)

	_, err := svc.Login("wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAdminLoginNotConfigured(t *testing.T) {
	svc := NewAdminService(zap.NewNop(), "", NewTokenService("test-secret", time.Hour))

	_, err := svc.Login("anything")
	if !errors.Is(err, ErrAdminNotConfigured) {
		t.Errorf("err = %v, want ErrAdminNotConfigured", err)
	}
}
