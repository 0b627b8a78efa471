package service

import (
	"context"
	"encoding/json"

	"medstock/internal/entity"
	"medstock/internal/repository"
)

type UserService struct {
	users        repository.UserRepository
	securityLogs repository.SecurityLogRepository
	passwordHash PasswordHasher
}

func NewUserService(
	users repository.UserRepository,
	securityLogs repository.SecurityLogRepository,
	passwordHash PasswordHasher,
) *UserService {
	return &UserService{
		users:        users,
		securityLogs: securityLogs,
		passwordHash: passwordHash,
	}
}

func (s *UserService) List(ctx context.Context, search string) ([]entity.User, error) {
	return s.users.List(ctx, search)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateStatusBulk(ctx context.Context, ids []string, status bool, actorID *string, ipAddress *string) error {
	if err := s.users.UpdateStatusByIDs(ctx, ids, status); err != nil {
		return err
	}
	s.log(ctx, actorID, ipAddress, entity.StatusChanged, map[string]any{"userIds": ids, "status": status})
	return nil
}

// UpdateDetails changes a user's own name/phone after re-verifying their
// current password.
func (s *UserService) UpdateDetails(ctx context.Context, id string, name, phoneNo *string, password string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.HashedPassword == nil {
		return nil, ErrInvalidDetails
	}

	if !s.passwordHash.Verify(*user.HashedPassword, password) {
		return nil, ErrInvalidDetails
	}

	if err := s.users.UpdateDetails(ctx, id, name, phoneNo); err != nil {
		return nil, err
	}
	if name != nil {
		user.Name = *name
	}
	if phoneNo != nil {
		user.PhoneNo = *phoneNo
	}
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role entity.UserRole, actorID *string, ipAddress *string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	user.Role = role
	s.log(ctx, actorID, ipAddress, entity.RoleChanged, map[string]any{"userId": id, "role": role})
	return user, nil
}

func (s *UserService) UpdateStatus(ctx context.Context, id string, status bool, actorID *string, ipAddress *string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.users.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	user.Status = status
	s.log(ctx, actorID, ipAddress, entity.StatusChanged, map[string]any{"userId": id, "status": status})
	return user, nil
}

func (s *UserService) DeleteBulk(ctx context.Context, ids []string) error {
	return s.users.DeleteByIDs(ctx, ids)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) log(ctx context.Context, userID *string, ipAddress *string, action entity.SecurityAction, metadata map[string]any) {
	if s.securityLogs == nil {
		return
	}
	entry := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
	}
	if metadata != nil {
		if encoded, err := json.Marshal(metadata); err == nil {
			entry.Metadata = encoded
		}
	}
	_ = s.securityLogs.Log(ctx, entry)
}
