package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ai_dashboard_server/internal/store"
	"ai_dashboard_server/internal/validation"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for a missing, malformed, expired or foreign token.
	ErrInvalidToken = errors.New("invalid token")
)

// Users is the slice of the document store auth depends on.
type Users interface {
	CreateUser(ctx context.Context, email, displayName, passwordHash string) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUser(ctx context.Context, id string) (store.User, error)
}

// Config controls token issuance.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims are the JWT claims issued by the service.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs users up, logs them in and verifies their tokens.
type Service struct {
	users      Users
	secret     []byte
	issuer     string
	ttl        time.Duration
	bcryptCost int
	compare    func(hash, password []byte) error
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewService builds an auth service. The secret must be non-empty.
func NewService(users Users, cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "ai-dashboard"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	return &Service{
		users:      users,
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		ttl:        cfg.TTL,
		bcryptCost: bcrypt.DefaultCost,
		compare:    bcrypt.CompareHashAndPassword,
		now:        time.Now,
	}, nil
}

// Session is the result of a successful signup or login.
type Session struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      store.User `json:"user"`
}

type signupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"max=80"`
}

// Signup validates the credentials, stores a bcrypt hash and issues a token.
// Validation failures are returned as validation.Errors.
func (s *Service) Signup(ctx context.Context, email, password, displayName string) (Session, error) {
	in := signupInput{Email: strings.TrimSpace(email), Password: password, DisplayName: strings.TrimSpace(displayName)}
	if err := validation.Struct(in); err != nil {
		return Session{}, err
	}
	if in.DisplayName == "" {
		in.DisplayName = strings.SplitN(in.Email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.users.CreateUser(ctx, in.Email, in.DisplayName, string(hash))
	if err != nil {
		return Session{}, err
	}
	return s.issue(user)
}

// Login checks the password and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Unknown emails pay the same bcrypt cost as wrong passwords.
			_ = s.compare(s.unknownUserHash(), []byte(password))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := s.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), s.bcryptCost)
	})
	return s.dummyHash
}

// User loads the account behind verified claims.
func (s *Service) User(ctx context.Context, claims *Claims) (store.User, error) {
	return s.users.GetUser(ctx, claims.Subject)
}

func (s *Service) issue(user store.User) (Session, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	return Session{Token: token, ExpiresAt: exp.UTC(), User: user}, nil
}

// ParseToken verifies an HS256 token issued by this service.
func (s *Service) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
