package repository

import (
	"context"
	"errors"
	"strings"

	"medstock/internal/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, search string) ([]entity.User, error)
	UpdateDetails(ctx context.Context, id string, name, phoneNo *string) error
	UpdatePassword(ctx context.Context, id string, hash string) error
	UpdateRole(ctx context.Context, id string, role entity.UserRole) error
	UpdateStatus(ctx context.Context, id string, status bool) error
	UpdateStatusByIDs(ctx context.Context, ids []string, status bool) error
	UpdatePhotoURL(ctx context.Context, id string, url string) error
	DeleteByIDs(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, search string) ([]entity.User, error) {
	query := r.db.WithContext(ctx).Order("id")
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var users []entity.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateDetails(ctx context.Context, id string, name, phoneNo *string) error {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if phoneNo != nil {
		updates["phone_no"] = *phoneNo
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(updates).
		Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("hashed_password", hash).
		Error
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role entity.UserRole) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("role", role).
		Error
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status bool) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *userRepository) UpdateStatusByIDs(ctx context.Context, ids []string, status bool) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id IN ?", ids).
		Update("status", status).
		Error
}

func (r *userRepository) UpdatePhotoURL(ctx context.Context, id string, url string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("photo_url", url).
		Error
}

func (r *userRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id IN ?", ids).Delete(&entity.Session{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&entity.User{}).Error
	})
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.DeleteByIDs(ctx, []string{id})
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&total).Error
	return total, err
}
