package services

import (
	"context"

	"aistore/internal/models/db_models"
	"aistore/internal/models/request_models"
	"aistore/internal/models/response_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"

	"github.com/google/uuid"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.Profile, error)
	ListUsers(ctx context.Context) ([]db_models.Profile, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		FullName:         request.FullName,
		Company:          request.Company,
		Role:             db_models.RoleUser,
		SubscriptionTier: db_models.TierFree,
	}

	if err := a.accountRepo.Insert(ctx, profile); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	profile, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(profile.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token, Profile: profile}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	profile, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}
	return profile, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.Profile, error) {
	patch := map[string]interface{}{}
	if request.FullName != nil {
		patch["full_name"] = *request.FullName
	}
	if request.Company != nil {
		patch["company"] = *request.Company
	}
	if request.AvatarURL != nil {
		patch["avatar_url"] = *request.AvatarURL
	}

	if len(patch) > 0 {
		if err := a.accountRepo.Update(ctx, userID, patch); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return a.GetProfile(ctx, userID)
}

func (a *AccountService) ListUsers(ctx context.Context) ([]db_models.Profile, error) {
	profiles, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profiles, nil
}

func (a *AccountService) UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) error {
	patch := map[string]interface{}{}
	if request.Role != nil {
		patch["role"] = *request.Role
	}
	if request.SubscriptionTier != nil {
		patch["subscription_tier"] = *request.SubscriptionTier
	}
	if request.FullName != nil {
		patch["full_name"] = *request.FullName
	}

	if len(patch) == 0 {
		return nil
	}
	if err := a.accountRepo.Update(ctx, userID, patch); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := a.accountRepo.Delete(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
