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

// StoryService manages a user's story library.
type StoryService interface {
	Create(ctx context.Context, userID uuid.UUID, story *models.Story) (*models.Story, error)
	Get(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Story, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error)
	Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate) (*models.Story, error)
	Delete(ctx context.Context, userID, storyID uuid.UUID) error
	ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)
	MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)
}

// Compile-time check to ensure storyServiceImpl implements StoryService
var _ StoryService = (*storyServiceImpl)(nil)

type storyServiceImpl struct {
	storyRepo interfaces.StoryRepository
	logger    *zap.Logger
}

// NewStoryService creates a new instance of storyServiceImpl.
func NewStoryService(storyRepo interfaces.StoryRepository, logger *zap.Logger) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		logger:    logger.Named("StoryService"),
	}
}

// Create saves a story supplied by the user. Word count and reading time are
// always derived server-side.
func (s *storyServiceImpl) Create(ctx context.Context, userID uuid.UUID, story *models.Story) (*models.Story, error) {
	story.Title = strings.TrimSpace(story.Title)
	if story.Title == "" {
		return nil, fmt.Errorf("story title is required: %w", models.ErrInvalidInput)
	}
	if strings.TrimSpace(story.Content) == "" {
		return nil, fmt.Errorf("story content is required: %w", models.ErrInvalidInput)
	}
	if story.Length == "" {
		story.Length = models.StoryLengthMedium
	}
	if !models.IsValidStoryLength(story.Length) {
		return nil, fmt.Errorf("invalid story length %q: %w", story.Length, models.ErrInvalidInput)
	}

	story.UserID = userID
	story.WordCount = models.CountWords(story.Content)
	story.ReadingTimeMinutes = models.ReadingTimeForLength(story.Length)

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *storyServiceImpl) Get(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	return s.storyRepo.GetByID(ctx, userID, storyID)
}

func (s *storyServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	return s.storyRepo.ListByUser(ctx, userID)
}

func (s *storyServiceImpl) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	return s.storyRepo.ListFavorites(ctx, userID)
}

// Update applies a partial update. A content change recomputes the word count.
func (s *storyServiceImpl) Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate) (*models.Story, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("story title cannot be empty: %w", models.ErrInvalidInput)
	}
	if upd.Content != nil && strings.TrimSpace(*upd.Content) == "" {
		return nil, fmt.Errorf("story content cannot be empty: %w", models.ErrInvalidInput)
	}

	var wordCount *int
	if upd.Content != nil {
		wc := models.CountWords(*upd.Content)
		wordCount = &wc
	}
	return s.storyRepo.Update(ctx, userID, storyID, upd, wordCount)
}

func (s *storyServiceImpl) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	return s.storyRepo.Delete(ctx, userID, storyID)
}

func (s *storyServiceImpl) ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	return s.storyRepo.ToggleFavorite(ctx, userID, storyID)
}

func (s *storyServiceImpl) MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	return s.storyRepo.MarkAsRead(ctx, userID, storyID)
}
