// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading their role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("SellerProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading their role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("SellerProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including whatever role profiles are attached.
// GORM's Create with associations inserts into users, buyer_profiles and/or
// seller_profiles in one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate generated values back onto the entity
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.BuyerProfile != nil && userM.BuyerProfile != nil {
		user.BuyerProfile.UserID = userM.BuyerProfile.UserID
		user.BuyerProfile.UpdatedAt = userM.BuyerProfile.UpdatedAt
	}
	if user.SellerProfile != nil && userM.SellerProfile != nil {
		user.SellerProfile.UserID = userM.SellerProfile.UserID
		user.SellerProfile.UpdatedAt = userM.SellerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its attached role profiles.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update nested associations
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AttachBuyerProfile adds a buyer profile to an existing user.
func (repo *userRepository) AttachBuyerProfile(ctx context.Context, profile *entity.BuyerProfile) error {
	profileM := fromBuyerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuyerProfileExists.WrapMessage("buyer profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach buyer profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// AttachSellerProfile adds a seller profile to an existing user.
func (repo *userRepository) AttachSellerProfile(ctx context.Context, profile *entity.SellerProfile) error {
	profileM := fromSellerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSellerProfileExists.WrapMessage("seller profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach seller profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete removes the user row. Dependent rows go with it via ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		BuyerProfile:  toBuyerProfileDomain(data.BuyerProfile),
		SellerProfile: toSellerProfileDomain(data.SellerProfile),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		BuyerProfile:  fromBuyerProfileDomain(data.BuyerProfile),
		SellerProfile: fromSellerProfileDomain(data.SellerProfile),
	}
}

// toBuyerProfileDomain converts a GORM BuyerProfileModel to a domain BuyerProfile entity.
func toBuyerProfileDomain(data *model.BuyerProfileModel) *entity.BuyerProfile {
	if data == nil {
		return nil
	}

	return &entity.BuyerProfile{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
		Mobile:          data.Mobile,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromBuyerProfileDomain converts a domain BuyerProfile entity to a GORM BuyerProfileModel.
func fromBuyerProfileDomain(data *entity.BuyerProfile) *model.BuyerProfileModel {
	if data == nil {
		return nil
	}

	return &model.BuyerProfileModel{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
		Mobile:          data.Mobile,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toSellerProfileDomain converts a GORM SellerProfileModel to a domain SellerProfile entity.
func toSellerProfileDomain(data *model.SellerProfileModel) *entity.SellerProfile {
	if data == nil {
		return nil
	}

	return &entity.SellerProfile{
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Bio:       data.Bio,
		AvatarURL: data.AvatarURL,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSellerProfileDomain converts a domain SellerProfile entity to a GORM SellerProfileModel.
func fromSellerProfileDomain(data *entity.SellerProfile) *model.SellerProfileModel {
	if data == nil {
		return nil
	}

	return &model.SellerProfileModel{
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Bio:       data.Bio,
		AvatarURL: data.AvatarURL,
		UpdatedAt: data.UpdatedAt,
	}
}
