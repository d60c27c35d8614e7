// File: services/account/auth.go
package account

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"agendly/models"
	"agendly/utils"
)

const tokenTTL = 24 * time.Hour

// Register creates the account and the profile matching its role, then
// issues the first token.
func (s *DefaultAccountService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Role != models.RoleClient && req.Role != models.RoleEstablishment {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
	if existing, err := s.Repo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	} else if err != nil && err != mongo.ErrNoDocuments {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	profileID, err := s.createProfile(ctx, user, req.Name)
	if err != nil {
		utils.GetLogger().Error("Failed to create profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, user, profileID)
}

func (s *DefaultAccountService) createProfile(ctx context.Context, user *models.User, name string) (string, error) {
	switch user.Role {
	case models.RoleClient:
		profile := &models.ClientProfile{UserID: user.ID, Name: name}
		if err := s.ClientRepo.Create(ctx, profile); err != nil {
			return "", err
		}
		return profile.ID, nil
	case models.RoleEstablishment:
		profile := &models.EstablishmentProfile{UserID: user.ID, Name: name}
		if err := s.EstRepo.Create(ctx, profile); err != nil {
			return "", err
		}
		return profile.ID, nil
	}
	return "", fmt.Errorf("unknown role %q", user.Role)
}

// Login verifies credentials, rotates the token hash and clears the cached
// authorization entry.
func (s *DefaultAccountService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	profileID, err := s.profileID(ctx, user)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve profile", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return s.issueToken(ctx, user, profileID)
}

func (s *DefaultAccountService) profileID(ctx context.Context, user *models.User) (string, error) {
	switch user.Role {
	case models.RoleClient:
		profile, err := s.ClientRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		return profile.ID, nil
	case models.RoleEstablishment:
		profile, err := s.EstRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		return profile.ID, nil
	}
	return "", fmt.Errorf("unknown role %q", user.Role)
}

func (s *DefaultAccountService) issueToken(ctx context.Context, user *models.User, profileID string) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.UpdateTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Failed to update token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + user.ID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.Error(err))
	}

	return &AuthResponse{
		UserID:    user.ID,
		ProfileID: profileID,
		Role:      user.Role,
		Email:     user.Email,
		Token:     token,
	}, nil
}

// Logout clears the stored token hash so the current token stops validating.
func (s *DefaultAccountService) Logout(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		utils.GetLogger().Error("Failed to revoke auth token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}
