package service

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("login disabled")
)

// dummyHash keeps the bcrypt cost on unknown usernames.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-the-password"), bcrypt.MinCost)

type Session struct {
	Token     string    `json:"access_token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
}

// AuthService checks the single supervisor account configured through env.
type AuthService struct {
	username string
	hash     []byte
	tokens   *TokenService
}

func NewAuthService(username, passwordHash string, tokens *TokenService) *AuthService {
	return &AuthService{
		username: strings.TrimSpace(username),
		hash:     []byte(strings.TrimSpace(passwordHash)),
		tokens:   tokens,
	}
}

func (s *AuthService) Login(username, password string) (Session, error) {
	if s.username == "" || len(s.hash) == 0 {
		return Session{}, ErrLoginDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.username)) == 1
	hash := s.hash
	if !userOK {
		hash = dummyHash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !userOK {
		return Session{}, ErrInvalidCredentials
	}

	tok, exp, err := s.tokens.Issue(s.username, RoleSupervisor)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: tok, TokenType: "Bearer", ExpiresAt: exp, UserName: s.username, Role: RoleSupervisor}, nil
}
