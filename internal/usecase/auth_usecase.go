package usecase

import (
	"context"
	"strings"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
)

// Sign-in is an email lookup; there is no credential check.
const signInFailedMessage = "account not found or credentials incorrect"

type AuthUseCase struct {
	userRepo repository.UserRepository
}

func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
	}
}

type SignUpInput struct {
	Name  string
	Email string
}

func (uc *AuthUseCase) SignIn(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFoundMessage(signInFailedMessage, nil)
		}
		return nil, err
	}

	logger.Info("User signed in: %s", user.ID)
	return user, nil
}

func (uc *AuthUseCase) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" {
		return nil, errors.Validation("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Validation("a valid email is required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	id := uc.userRepo.NewID()
	user := &entity.User{
		ID:        id,
		Name:      name,
		Email:     email,
		AvatarURL: entity.PlaceholderAvatar(id),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User signed up: %s", user.ID)
	return user, nil
}
