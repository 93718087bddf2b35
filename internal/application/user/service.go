// Package user is the application service for operator accounts:
// registration, password login with JWT issuance, profile updates.
package user

import (
	"context"
	"fmt"
	"strings"

	"extinsia/internal/application/user/dto"
	"extinsia/internal/domain/user"
	"extinsia/internal/shared/authorization"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/textutil"
)

const minPasswordLength = 4

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginRequest struct {
	Email    string
	Password string
}

// UpdateRequest changes profile fields of the account identified by its
// current email. An empty Password keeps the stored hash.
type UpdateRequest struct {
	Name     string
	NewEmail string
	Password string
}

type Service struct {
	repo    user.Repository
	hasher  PasswordHasher
	tokens  TokenIssuer
	limiter LoginLimiter
	logger  logger.Interface
}

func NewService(
	repo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter LoginLimiter,
	logger logger.Interface,
) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*dto.UserDTO, error) {
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must have at least %d characters", minPasswordLength))
	}

	email := textutil.NormalizeEmail(req.Email)
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewRepositoryError("failed to look up user", err.Error())
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("email %q is already registered", email))
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	role := authorization.ParseUserRole(req.Role)
	u, err := user.NewUser(req.Name, req.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewRepositoryError("failed to save user", err.Error())
	}

	s.logger.Infow("user registered", "user_code", u.Code(), "role", u.Role().String())
	return dto.FromUser(u), nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*dto.LoginResponse, error) {
	email := textutil.NormalizeEmail(req.Email)

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, email); err != nil {
			return nil, errors.NewForbiddenError("too many failed attempts, try again later")
		}
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewRepositoryError("failed to look up user", err.Error())
	}

	// A missing account and a bad password answer the same way so the
	// response does not reveal which emails are registered.
	if u == nil || s.hasher.Compare(u.PasswordHash(), req.Password) != nil {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, email); err != nil {
				s.logger.Warnw("failed to record login failure", "error", err)
			}
		}
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warnw("failed to reset login counter", "error", err)
		}
	}

	pair, err := s.tokens.Issue(u)
	if err != nil {
		return nil, errors.NewInternalError("failed to issue tokens", err.Error())
	}

	s.logger.Infow("user logged in", "user_code", u.Code())
	return &dto.LoginResponse{
		User:         dto.FromUser(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The account
// is reloaded so revoked or deleted accounts stop renewing.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	code, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewRepositoryError("failed to look up user", err.Error())
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	pair, err := s.tokens.Issue(u)
	if err != nil {
		return nil, errors.NewInternalError("failed to issue tokens", err.Error())
	}

	return &dto.LoginResponse{
		User:         dto.FromUser(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}

func (s *Service) Update(ctx context.Context, currentEmail string, req UpdateRequest) (*dto.UserDTO, error) {
	currentEmail = textutil.NormalizeEmail(currentEmail)

	existing, err := s.repo.FindByEmail(ctx, currentEmail)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewRepositoryError("failed to look up user", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %q not found", currentEmail))
	}

	newEmail := textutil.NormalizeEmail(req.NewEmail)
	if newEmail == "" {
		newEmail = currentEmail
	}
	if newEmail != currentEmail {
		taken, err := s.repo.FindByEmail(ctx, newEmail)
		if err != nil {
			return nil, errors.NewRepositoryError("failed to look up user", err.Error())
		}
		if taken != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("email %q is already in use", newEmail))
		}
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = existing.Name()
	}
	if err := existing.UpdateProfile(name, newEmail); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Password != "" {
		if len(strings.TrimSpace(req.Password)) < minPasswordLength {
			return nil, errors.NewValidationError(
				fmt.Sprintf("password must have at least %d characters", minPasswordLength))
		}
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password", err.Error())
		}
		if err := existing.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Errorw("failed to update user", "error", err)
		return nil, errors.NewRepositoryError("failed to update user", err.Error())
	}

	return dto.FromUser(existing), nil
}

func (s *Service) Delete(ctx context.Context, email string) error {
	email = textutil.NormalizeEmail(email)

	found, err := s.repo.Delete(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to delete user", "error", err)
		return errors.NewRepositoryError("failed to delete user", err.Error())
	}
	if !found {
		return errors.NewNotFoundError(fmt.Sprintf("user %q not found", email))
	}

	s.logger.Infow("user deleted", "email", email)
	return nil
}

func (s *Service) Get(ctx context.Context, code string) (*dto.UserDTO, error) {
	u, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to load user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %q not found", code))
	}
	return dto.FromUser(u), nil
}

func (s *Service) List(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list users", err.Error())
	}
	return dto.FromUsers(users), nil
}
