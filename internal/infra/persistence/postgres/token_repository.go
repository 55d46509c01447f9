package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/infra/persistence/model"
)

// tokenRepository implements the domain's TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// CreateAccessToken persists a freshly issued access token.
func (repo *tokenRepository) CreateAccessToken(ctx context.Context, token *entity.AccessToken) error {
	tokenM := fromAccessTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindAccessToken retrieves an access token record by its opaque value.
func (repo *tokenRepository) FindAccessToken(ctx context.Context, token string) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	return toAccessTokenDomain(&tokenM), nil
}

// UpdateAccessToken persists changes to an access token record.
func (repo *tokenRepository) UpdateAccessToken(ctx context.Context, token *entity.AccessToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccessTokenModel{}).
		Where("id = ?", token.ID).
		Update("expired_at", token.ExpiredAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update access token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccessTokenNotFound
	}

	return nil
}

// CreateResetPasswordToken persists a freshly issued reset code.
func (repo *tokenRepository) CreateResetPasswordToken(ctx context.Context, token *entity.ResetPasswordToken) error {
	tokenM := fromResetPasswordTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset password token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindResetPasswordToken retrieves the newest reset code issued for the e-mail
// with the given value.
func (repo *tokenRepository) FindResetPasswordToken(ctx context.Context, email, token string) (*entity.ResetPasswordToken, error) {
	var tokenM model.ResetPasswordTokenModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND token = ?", email, token).
		Order("created_at DESC").
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset password token")
	}

	return toResetPasswordTokenDomain(&tokenM), nil
}

// UpdateResetPasswordToken persists changes to a reset code record.
func (repo *tokenRepository) UpdateResetPasswordToken(ctx context.Context, token *entity.ResetPasswordToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetPasswordTokenModel{}).
		Where("id = ?", token.ID).
		Update("expired_at", token.ExpiredAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reset password token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccessTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		ID:        data.ID,
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		ExpiredAt: data.ExpiredAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromAccessTokenDomain(data *entity.AccessToken) *model.AccessTokenModel {
	if data == nil {
		return nil
	}

	return &model.AccessTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		ExpiredAt: data.ExpiredAt,
	}
}

func toResetPasswordTokenDomain(data *model.ResetPasswordTokenModel) *entity.ResetPasswordToken {
	if data == nil {
		return nil
	}

	return &entity.ResetPasswordToken{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		ExpiredAt: data.ExpiredAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromResetPasswordTokenDomain(data *entity.ResetPasswordToken) *model.ResetPasswordTokenModel {
	if data == nil {
		return nil
	}

	return &model.ResetPasswordTokenModel{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		ExpiredAt: data.ExpiredAt,
	}
}
