package service

import (
	"context"

	"community-events/internal/model"
	"community-events/internal/repository"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
	Role        model.Role
}

type UserService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetProfile(ctx context.Context, uid string) (*model.User, error)
	// UpdateDisplayName 只改 users 表；活動與留言上的名稱快照不回填
	UpdateDisplayName(ctx context.Context, sess *session.Session, displayName string) (*model.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if params.Email == "" || params.Password == "" || params.DisplayName == "" {
		return nil, apperrors.ErrInvalidInput
	}
	// 角色註冊時決定，預設一般使用者
	role := params.Role
	if role == "" {
		role = model.RoleUser
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        params.Email,
		PasswordHash: string(hash),
		DisplayName:  params.DisplayName,
		Role:         role,
	}
	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, uid string) (*model.User, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *UserServiceImpl) UpdateDisplayName(ctx context.Context, sess *session.Session, displayName string) (*model.User, error) {
	if sess == nil {
		return nil, apperrors.ErrAuthenticationRequired
	}
	if displayName == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, sess.UID, model.UpdateUserParams{DisplayName: &displayName})
}
