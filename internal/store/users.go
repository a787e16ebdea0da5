package store

import (
	"context"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

func (s *Store) Users(ctx context.Context) []entity.User {
	return getCollection[entity.User](ctx, s, CollectionUsers)
}

func (s *Store) PutUsers(ctx context.Context, users []entity.User) error {
	return putCollection(ctx, s, CollectionUsers, users)
}

func (s *Store) FindUser(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range s.Users(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range s.Users(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) Agents(ctx context.Context) []entity.User {
	var agents []entity.User
	for _, u := range s.Users(ctx) {
		if u.Role == entity.RoleAgent {
			agents = append(agents, u)
		}
	}
	return agents
}

func (s *Store) AddUser(ctx context.Context, user entity.User) (*entity.User, error) {
	user.ID = generateID("user")
	user.CreatedAt = time.Now().UTC()

	users := append(s.Users(ctx), user)
	if err := s.PutUsers(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, apply func(*entity.User)) (*entity.User, error) {
	users := s.Users(ctx)
	for i := range users {
		if users[i].ID != id {
			continue
		}
		apply(&users[i])
		users[i].UpdatedAt = time.Now().UTC()
		if err := s.PutUsers(ctx, users); err != nil {
			return nil, err
		}
		updated := users[i]
		return &updated, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) RemoveUser(ctx context.Context, id string) (bool, error) {
	users := s.Users(ctx)
	kept := users[:0:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	if err := s.PutUsers(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
