package postgres

import (
	"context"

	"gorm.io/gorm"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateUser persists a new user. Username and email uniqueness is enforced
// by the database indexes.
func (s *Store) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.LanguagePreference == "" {
		userM.LanguagePreference = "en"
	}

	if err := s.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.LanguagePreference = userM.LanguagePreference
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindUserByID retrieves a user by its unique ID.
func (s *Store) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByUsername retrieves a user by its unique username.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := s.db.WithContext(ctx).
		Where("lower(username) = lower(?)", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a user by its unique email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := s.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ListUsers retrieves all users, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := s.db.WithContext(ctx).
		Order("id DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		Username:           data.Username,
		Password:           data.Password,
		Email:              data.Email,
		FullName:           data.FullName,
		IsAdmin:            data.IsAdmin,
		LanguagePreference: data.LanguagePreference,
		CreatedAt:          data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Username:           data.Username,
		Password:           data.Password,
		Email:              data.Email,
		FullName:           data.FullName,
		IsAdmin:            data.IsAdmin,
		LanguagePreference: data.LanguagePreference,
		CreatedAt:          data.CreatedAt,
	}
}
