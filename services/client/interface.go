// File: services/client/interface.go
package client

import (
	"context"
	"fmt"

	clientRepo "agendly/database/repository/client"
	relationRepo "agendly/database/repository/relation"
	"agendly/models"
	"agendly/services/storage"
)

// ClientService manages client profiles and their link requests.
type ClientService interface {
	GetProfile(ctx context.Context, id string) (*models.ClientProfile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.ClientProfile, error)
	UpdateProfile(ctx context.Context, profile *models.ClientProfile) (*models.ClientProfile, error)
	RegisterFCMToken(ctx context.Context, id, token string) error
	UploadPhoto(ctx context.Context, id, localFilePath string) (string, error)
	RequestLink(ctx context.Context, clientID, establishmentID, message string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo    clientRepo.ClientRepository
	RelRepo relationRepo.RelationRepository
	Storage storage.StorageService
}

func (s *DefaultClientService) GetProfile(ctx context.Context, id string) (*models.ClientProfile, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}
	return c, nil
}

func (s *DefaultClientService) GetProfileByUserID(ctx context.Context, userID string) (*models.ClientProfile, error) {
	c, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client for user %s: %w", userID, err)
	}
	return c, nil
}

func (s *DefaultClientService) UpdateProfile(ctx context.Context, profile *models.ClientProfile) (*models.ClientProfile, error) {
	if profile.ID == "" {
		return nil, fmt.Errorf("client id is required")
	}
	if profile.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if err := s.Repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", profile.ID, err)
	}
	return profile, nil
}

func (s *DefaultClientService) RegisterFCMToken(ctx context.Context, id, token string) error {
	if token == "" {
		return fmt.Errorf("fcm token is required")
	}
	return s.Repo.SetFCMToken(ctx, id, token)
}

func (s *DefaultClientService) UploadPhoto(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("storage service not configured")
	}
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "clients")
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	url, err := s.Storage.GetDownloadURL(ctx, publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve photo url: %w", err)
	}
	if err := s.Repo.SetPhotoURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to record photo url: %w", err)
	}
	return url, nil
}

// RequestLink records the client's interest in joining an establishment's
// roster. Already linked clients have nothing to request.
func (s *DefaultClientService) RequestLink(ctx context.Context, clientID, establishmentID, message string) error {
	if rel, err := s.RelRepo.GetByPair(ctx, establishmentID, clientID); err == nil && rel != nil && rel.Status == models.RelationActive {
		return fmt.Errorf("client %s is already linked to establishment %s", clientID, establishmentID)
	}
	interest := &models.Interest{
		ClientID:        clientID,
		EstablishmentID: establishmentID,
		Message:         message,
	}
	if err := s.RelRepo.CreateInterest(ctx, interest); err != nil {
		return fmt.Errorf("failed to record link request: %w", err)
	}
	return nil
}
