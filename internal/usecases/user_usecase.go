package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/crypto"
	"shop-admin.backend/pkg/utils"
)

// UserUsecase manages admin accounts
type UserUsecase struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	uow      repositories.UnitOfWork
	audit    *AuditService
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, uow repositories.UnitOfWork, audit *AuditService) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, roleRepo: roleRepo, uow: uow, audit: audit}
}

// ListUsers lists admin users
func (u *UserUsecase) ListUsers(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, search, pagination)
}

// GetUser gets an admin user
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// CreateUser creates an active admin user
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := u.ensureEmailFree(ctx, email, nil); err != nil {
		return nil, err
	}
	role, err := u.roleRepo.GetByID(ctx, input.RoleID)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.BadRequest("role does not exist")
		}
		return nil, err
	}
	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		RoleID:       role.ID,
		RoleName:     role.Name,
		IsActive:     true,
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return u.audit.Record(ctx, "users", entities.AuditActionCreated, "user", user.ID.String(), nil, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update. Admins cannot deactivate themselves
// and the last active super admin cannot be demoted or deactivated.
func (u *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(user)

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			if err := u.ensureEmailFree(ctx, email, &id); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.RoleID != nil && *input.RoleID != user.RoleID {
		role, err := u.roleRepo.GetByID(ctx, *input.RoleID)
		if err != nil {
			if isNotFound(err) {
				return nil, domainerrors.BadRequest("role does not exist")
			}
			return nil, err
		}
		user.RoleID = role.ID
		user.RoleName = role.Name
	}
	if input.IsActive != nil {
		if !*input.IsActive && isSelf(ctx, id) {
			return nil, domainerrors.Unprocessable("you cannot deactivate your own account", domainerrors.ErrProtectedResource)
		}
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hash, err := crypto.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	losesSuperAdmin := before.RoleName == entities.RoleSuperAdmin && before.IsActive &&
		(user.RoleName != entities.RoleSuperAdmin || !user.IsActive)
	if losesSuperAdmin {
		if err := u.ensureAnotherSuperAdmin(ctx, before.RoleID); err != nil {
			return nil, err
		}
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
		return u.audit.Record(ctx, "users", entities.AuditActionUpdated, "user", id.String(), before, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes an admin user other than the caller
func (u *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if isSelf(ctx, id) {
		return domainerrors.Unprocessable("you cannot delete your own account", domainerrors.ErrProtectedResource)
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.RoleName == entities.RoleSuperAdmin && user.IsActive {
		if err := u.ensureAnotherSuperAdmin(ctx, user.RoleID); err != nil {
			return err
		}
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "users", entities.AuditActionDeleted, "user", id.String(), user, nil)
	})
}

func (u *UserUsecase) ensureAnotherSuperAdmin(ctx context.Context, roleID uuid.UUID) error {
	active, err := u.userRepo.CountActiveByRole(ctx, roleID)
	if err != nil {
		return err
	}
	if active <= 1 {
		return domainerrors.Unprocessable("at least one active super admin must remain", domainerrors.ErrProtectedResource)
	}
	return nil
}

func (u *UserUsecase) ensureEmailFree(ctx context.Context, email string, excludeID *uuid.UUID) error {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}
	return domainerrors.Conflict("email already in use")
}

func isSelf(ctx context.Context, id uuid.UUID) bool {
	a := actorID(ctx)
	return a != nil && *a == id
}
