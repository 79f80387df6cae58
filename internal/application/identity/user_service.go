package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/shared"
)

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput contains input for creating a user
type CreateUserInput struct {
	Username        string
	Password        string
	FullName        string
	Role            string
	CompanyCode     string
	LocationCode    string
	YearCode        string
	AccessibleMenus []string
}

// UpdateUserInput contains input for updating a user
type UpdateUserInput struct {
	ID              string
	FullName        *string
	Role            *string
	CompanyCode     *string
	LocationCode    *string
	YearCode        *string
	AccessibleMenus []string
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Error("failed to check username", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_EXISTS", "Username already exists")
	}

	role := identity.Role(input.Role)
	if input.Role == "" {
		role = identity.RoleUser
	}

	user, err := identity.NewUser(input.Username, input.Password, input.FullName, role)
	if err != nil {
		return nil, err
	}
	user.AssignScope(input.CompanyCode, input.LocationCode, input.YearCode)
	if len(input.AccessibleMenus) > 0 {
		user.SetMenus(input.AccessibleMenus)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("username", input.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))
	return toUserDTO(user), nil
}

// Update updates an existing user. Username and password are managed
// through their own operations.
func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if err := user.SetFullName(*input.FullName); err != nil {
			return nil, err
		}
	}
	if input.Role != nil {
		if err := user.SetRole(identity.Role(*input.Role)); err != nil {
			return nil, err
		}
	}

	companyCode, locationCode, yearCode := user.CompanyCode, user.LocationCode, user.YearCode
	if input.CompanyCode != nil {
		companyCode = *input.CompanyCode
	}
	if input.LocationCode != nil {
		locationCode = *input.LocationCode
	}
	if input.YearCode != nil {
		yearCode = *input.YearCode
	}
	user.AssignScope(companyCode, locationCode, yearCode)

	if input.AccessibleMenus != nil {
		user.SetMenus(input.AccessibleMenus)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", zap.String("id", user.ID), zap.Error(err))
		return nil, err
	}
	return toUserDTO(user), nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, id string) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// List returns users with pagination
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*UserListResult, error) {
	filter.Normalize()
	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	dtos := make([]*UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}

	totalPages := 0
	if filter.PageSize > 0 {
		totalPages = int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	}
	return &UserListResult{
		Users:      dtos,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// SetAllowed grants or revokes a user's ability to log in
func (s *UserService) SetAllowed(ctx context.Context, id string, allowed bool) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if allowed {
		user.Allow()
	} else {
		user.Disallow()
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user login permission changed",
		zap.String("username", user.Username),
		zap.Bool("is_allowed", allowed))
	return toUserDTO(user), nil
}

// ResetPassword sets a new password without requiring the current one.
// Admin operation.
func (s *UserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to reset password", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("password reset", zap.String("username", user.Username))
	return nil
}

// Delete deletes a user by ID
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("user deleted", zap.String("username", user.Username))
	return nil
}
