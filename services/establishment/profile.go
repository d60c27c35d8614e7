// File: services/establishment/profile.go
package establishment

import (
	"context"
	"fmt"

	"agendly/models"
)

func (s *DefaultEstablishmentService) GetProfile(ctx context.Context, id string) (*models.EstablishmentProfile, error) {
	est, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment %s: %w", id, err)
	}
	return est, nil
}

func (s *DefaultEstablishmentService) GetProfileByUserID(ctx context.Context, userID string) (*models.EstablishmentProfile, error) {
	est, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment for user %s: %w", userID, err)
	}
	return est, nil
}

func (s *DefaultEstablishmentService) UpdateProfile(ctx context.Context, est *models.EstablishmentProfile) (*models.EstablishmentProfile, error) {
	if est.ID == "" {
		return nil, fmt.Errorf("establishment id is required")
	}
	if est.Name == "" {
		return nil, fmt.Errorf("establishment name is required")
	}
	if err := s.Repo.Update(ctx, est); err != nil {
		return nil, fmt.Errorf("failed to update establishment %s: %w", est.ID, err)
	}
	return est, nil
}

// UploadPhoto stores the profile photo and records its delivery URL.
func (s *DefaultEstablishmentService) UploadPhoto(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("storage service not configured")
	}
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "establishments")
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
