package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// ChildProfileService manages a parent's child profiles.
type ChildProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, profile *models.ChildProfile) (*models.ChildProfile, error)
	Get(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error)
	Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
	SetActive(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error)
}

// Compile-time check to ensure childProfileServiceImpl implements ChildProfileService
var _ ChildProfileService = (*childProfileServiceImpl)(nil)

type childProfileServiceImpl struct {
	profileRepo interfaces.ChildProfileRepository
	logger      *zap.Logger
}

// NewChildProfileService creates a new instance of childProfileServiceImpl.
func NewChildProfileService(profileRepo interfaces.ChildProfileRepository, logger *zap.Logger) ChildProfileService {
	return &childProfileServiceImpl{
		profileRepo: profileRepo,
		logger:      logger.Named("ChildProfileService"),
	}
}

func (s *childProfileServiceImpl) Create(ctx context.Context, userID uuid.UUID, profile *models.ChildProfile) (*models.ChildProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return nil, fmt.Errorf("profile name is required: %w", models.ErrInvalidInput)
	}
	if profile.ReadingLevel != nil && !models.IsValidReadingLevel(*profile.ReadingLevel) {
		return nil, fmt.Errorf("invalid reading level %q: %w", *profile.ReadingLevel, models.ErrInvalidInput)
	}
	if profile.Age != nil && (*profile.Age < 0 || *profile.Age > 18) {
		return nil, fmt.Errorf("age must be between 0 and 18: %w", models.ErrInvalidInput)
	}

	profile.UserID = userID
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *childProfileServiceImpl) Get(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	return s.profileRepo.GetByID(ctx, userID, profileID)
}

func (s *childProfileServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error) {
	return s.profileRepo.ListByUser(ctx, userID)
}

func (s *childProfileServiceImpl) GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error) {
	return s.profileRepo.GetActive(ctx, userID)
}

func (s *childProfileServiceImpl) Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("profile name cannot be empty: %w", models.ErrInvalidInput)
	}
	if upd.ReadingLevel != nil && !models.IsValidReadingLevel(*upd.ReadingLevel) {
		return nil, fmt.Errorf("invalid reading level %q: %w", *upd.ReadingLevel, models.ErrInvalidInput)
	}
	if upd.Age != nil && (*upd.Age < 0 || *upd.Age > 18) {
		return nil, fmt.Errorf("age must be between 0 and 18: %w", models.ErrInvalidInput)
	}
	return s.profileRepo.Update(ctx, userID, profileID, upd)
}

func (s *childProfileServiceImpl) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	return s.profileRepo.Delete(ctx, userID, profileID)
}

func (s *childProfileServiceImpl) SetActive(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	if err := s.profileRepo.SetActive(ctx, userID, profileID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, userID, profileID)
}
