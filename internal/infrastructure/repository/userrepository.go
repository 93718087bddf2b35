package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"extinsia/internal/domain/user"
	"extinsia/internal/infrastructure/persistence/mappers"
	"extinsia/internal/infrastructure/persistence/models"
)

type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.UserModel{}, "codigo", "USR")
		if err != nil {
			return err
		}
		if err := u.SetCode(code); err != nil {
			return err
		}

		model := r.mapper.ToModel(u)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return u.SetID(model.ID)
	})
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("codigo = ?", u.Code()).
		Updates(map[string]interface{}{
			"nombre":     model.Name,
			"email":      model.Email,
			"contrasena": model.PasswordHash,
			"rol":        model.Role,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, email string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.UserModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) FindByCode(ctx context.Context, code string) (*user.User, error) {
	return r.findOne(ctx, "codigo = ?", code)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var modelList []models.UserModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
