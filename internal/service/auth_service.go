package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

// LoginResult is a structured outcome: bad credentials are a failed result,
// never an error.
type LoginResult struct {
	Success bool
	User    *entity.User
	Token   string
	Reason  string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *entity.Session
	RequireRole(ctx context.Context, role entity.Role) (*entity.Session, error)
	VerifyToken(token string) (string, error)
}

type authService struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	log       logger.Logger
}

func NewAuthService(st *store.Store, jwtSecret string, tokenTTL time.Duration, log logger.Logger) AuthService {
	return &authService{
		store:     st,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login compares credentials in plaintext, matching the persisted user
// layout. On success the session is stored without the password, alongside a
// signed token.
func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	for _, u := range s.store.Users(ctx) {
		if u.Email != email || u.Password != password {
			continue
		}

		token, err := s.issueToken(u)
		if err != nil {
			return LoginResult{}, fmt.Errorf("failed to issue session token: %w", err)
		}

		session := entity.Session{
			User:    u.WithoutPassword(),
			Token:   token,
			LoginAt: time.Now().UTC(),
		}
		if err := s.store.SetCurrentSession(ctx, session); err != nil {
			return LoginResult{}, err
		}

		user := u.WithoutPassword()
		s.log.Infof("User %s logged in as %s", user.ID, user.Role)
		return LoginResult{Success: true, User: &user, Token: token}, nil
	}

	return LoginResult{Success: false, Reason: "Invalid email or password"}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.store.ClearCurrentSession(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) *entity.Session {
	return s.store.CurrentSession(ctx)
}

func (s *authService) RequireRole(ctx context.Context, role entity.Role) (*entity.Session, error) {
	session := s.store.CurrentSession(ctx)
	if session == nil {
		return nil, fmt.Errorf("not logged in")
	}
	if role != "" && session.Role != role {
		return nil, fmt.Errorf("insufficient permissions: need %s, have %s", role, session.Role)
	}
	return session, nil
}

// VerifyToken validates a session token and returns the user ID it was
// issued for.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("session token missing subject: %w", err)
	}
	return sub, nil
}

func (s *authService) issueToken(user entity.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
