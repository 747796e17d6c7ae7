package user

import (
	"context"

	"hackfest/internal/http/api"
	"hackfest/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserManager
type UserManager interface {
	List(ctx context.Context) ([]*models.User, error)
	GetById(ctx context.Context, userID string) (*models.User, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) (*models.User, error)
	Delete(ctx context.Context, userID string) error
}

type UserService struct {
	userManager UserManager
}

func NewUserService(userManager UserManager) *UserService {
	return &UserService{
		userManager: userManager,
	}
}

func (s *UserService) List(ctx context.Context) ([]api.UserSchema, error) {
	users, err := s.userManager.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.UserSchema, 0, len(users))
	for _, u := range users {
		resp = append(resp, api.UserFromModel(u))
	}

	return resp, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*api.UserSchema, error) {
	u, err := s.userManager.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := api.UserFromModel(u)

	return &resp, nil
}

func (s *UserService) SetAdmin(ctx context.Context, userID string, isAdmin bool) (*api.UserSchema, error) {
	u, err := s.userManager.SetAdmin(ctx, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	resp := api.UserFromModel(u)

	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.userManager.Delete(ctx, userID)
}
