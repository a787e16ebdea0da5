package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

type CreateUserParams struct {
	Email          string
	Password       string
	Role           entity.Role
	Name           string
	FirstName      string
	LastName       string
	Phone          string
	Specialization string
}

type UpdateUserParams struct {
	Password       *string
	Name           *string
	FirstName      *string
	LastName       *string
	Phone          *string
	Specialization *string
}

type UserService interface {
	Create(ctx context.Context, params CreateUserParams) (*entity.User, error)
	Update(ctx context.Context, id string, params UpdateUserParams) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.User, error)
	ByEmail(ctx context.Context, email string) (*entity.User, error)
	Agents(ctx context.Context) []entity.User
	SeedDefaults(ctx context.Context) (bool, error)
}

type userService struct {
	store *store.Store
	log   logger.Logger
}

func NewUserService(st *store.Store, log logger.Logger) UserService {
	return &userService{store: st, log: log}
}

func (s *userService) Create(ctx context.Context, params CreateUserParams) (*entity.User, error) {
	if params.Email == "" {
		return nil, fmt.Errorf("user email cannot be empty")
	}
	if params.Password == "" {
		return nil, fmt.Errorf("user password cannot be empty")
	}
	if params.Role != entity.RoleAdmin && params.Role != entity.RoleAgent {
		return nil, fmt.Errorf("unknown role %q", params.Role)
	}
	if _, err := s.store.FindUserByEmail(ctx, params.Email); err == nil {
		return nil, fmt.Errorf("a user with email %s already exists", params.Email)
	}

	name := params.Name
	if name == "" && (params.FirstName != "" || params.LastName != "") {
		name = params.FirstName + " " + params.LastName
	}

	user := entity.User{
		Email:          params.Email,
		Password:       params.Password,
		Role:           params.Role,
		Name:           name,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Phone:          params.Phone,
		Specialization: params.Specialization,
	}

	created, err := s.store.AddUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.log.Infof("User %s created with role %s", created.ID, created.Role)
	return created, nil
}

// Update never touches the role: it is immutable business-wise even though
// the underlying store would permit changing it.
func (s *userService) Update(ctx context.Context, id string, params UpdateUserParams) (*entity.User, error) {
	updated, err := s.store.UpdateUser(ctx, id, func(u *entity.User) {
		if params.Password != nil && *params.Password != "" {
			u.Password = *params.Password
		}
		if params.Name != nil {
			u.Name = *params.Name
		}
		if params.FirstName != nil {
			u.FirstName = *params.FirstName
		}
		if params.LastName != nil {
			u.LastName = *params.LastName
		}
		if params.Phone != nil {
			u.Phone = *params.Phone
		}
		if params.Specialization != nil {
			u.Specialization = *params.Specialization
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.RemoveUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

func (s *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.store.FindUser(ctx, id)
}

func (s *userService) ByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.store.FindUserByEmail(ctx, email)
}

func (s *userService) Agents(ctx context.Context) []entity.User {
	return s.store.Agents(ctx)
}

// SeedDefaults installs the stock admin and agent accounts when the users
// collection is empty. Returns true when seeding happened.
func (s *userService) SeedDefaults(ctx context.Context) (bool, error) {
	if len(s.store.Users(ctx)) > 0 {
		return false, nil
	}

	defaults := []CreateUserParams{
		{Email: "admin@company.com", Password: "admin123", Role: entity.RoleAdmin, FirstName: "Admin", LastName: "User", Phone: "555-100-0001"},
		{Email: "agent1@company.com", Password: "agent123", Role: entity.RoleAgent, FirstName: "Carlos", LastName: "Reyes", Phone: "555-200-0001", Specialization: "Residential"},
		{Email: "agent2@company.com", Password: "agent123", Role: entity.RoleAgent, FirstName: "Maria", LastName: "Lopez", Phone: "555-200-0002", Specialization: "Commercial"},
		{Email: "agent3@company.com", Password: "agent123", Role: entity.RoleAgent, FirstName: "Ana", LastName: "Garcia", Phone: "555-200-0003", Specialization: "Luxury"},
	}
	for _, params := range defaults {
		if _, err := s.Create(ctx, params); err != nil {
			return false, fmt.Errorf("failed to seed user %s: %w", params.Email, err)
		}
	}

	s.log.Infof("Seeded %d default accounts", len(defaults))
	return true, nil
}

// ResolveAgent looks up an agent reference from another record. Dangling
// references resolve to nil without error.
func ResolveAgent(ctx context.Context, st *store.Store, agentID string) (*entity.User, error) {
	if agentID == "" {
		return nil, nil
	}
	agent, err := st.FindUser(ctx, agentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return agent, nil
}
