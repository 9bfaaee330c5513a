package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant-pos/apperrors"
	"restaurant-pos/helpers"
	"restaurant-pos/logger"
	"restaurant-pos/models"
	"restaurant-pos/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users repository.UserRepository
	log   *logger.Logger
}

func NewUserService(users repository.UserRepository, log *logger.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func VerifyPassword(userPassword string, providedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)) == nil
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (*models.User, error) {
	if user.Email == nil || user.Password == nil || user.Name == nil {
		return nil, fmt.Errorf("signup needs email, password and name: %w", apperrors.ErrValidation)
	}
	if !user.User_role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", user.User_role, apperrors.ErrValidation)
	}
	if existing, err := s.users.GetByEmail(ctx, *user.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", *user.Email, apperrors.ErrConflict)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(*user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = &hashed

	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()
	active := true
	user.Is_active = &active
	user.Created_at = now()
	user.Updated_at = now()

	token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.User_id, user.User_role)
	if err != nil {
		return nil, err
	}
	user.Token = &token
	user.Refresh_Token = &refreshToken

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	s.log.Info("user_signed_up", fmt.Sprintf("user %s registered as %s", user.User_id, user.User_role))
	return &user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("email or password is incorrect: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if user.Password == nil || !VerifyPassword(password, *user.Password) {
		return nil, fmt.Errorf("email or password is incorrect: %w", apperrors.ErrUnauthorized)
	}
	if user.Is_active == nil || !*user.Is_active {
		return nil, fmt.Errorf("account is deactivated: %w", apperrors.ErrUnauthorized)
	}

	token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.User_id, user.User_role)
	if err != nil {
		return nil, err
	}
	user.Token = &token
	user.Refresh_Token = &refreshToken
	user.Updated_at = now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes a user's role or active flag. Identity fields are
// immutable; only admins get here.
func (s *UserService) UpdateRole(ctx context.Context, actor *models.User, userId string, role *models.Role, isActive *bool) (*models.User, error) {
	if actor == nil || actor.User_role != models.RoleAdmin {
		return nil, fmt.Errorf("update user: %w", apperrors.ErrForbidden)
	}
	if role != nil && !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", *role, apperrors.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if role != nil {
		user.User_role = *role
	}
	if isActive != nil {
		user.Is_active = isActive
	}
	user.Updated_at = now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userId string) (*models.User, error) {
	return s.users.GetByID(ctx, userId)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
