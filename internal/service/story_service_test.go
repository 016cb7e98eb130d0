package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/mocks"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func TestStoryCreate_DerivesWordCountAndReadingTime(t *testing.T) {
	storyRepo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(storyRepo, zap.NewNop())
	userID := uuid.New()

	storyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Story")).
		Run(func(args mock.Arguments) {
			story := args.Get(1).(*models.Story)
			assert.Equal(t, userID, story.UserID)
			assert.Equal(t, 5, story.WordCount)
			assert.Equal(t, 5, story.ReadingTimeMinutes)
		}).
		Return(nil).Once()

	story, err := svc.Create(context.Background(), userID, &models.Story{
		Title:   "A Short Tale",
		Content: "One two three four five",
		Length:  models.StoryLengthShort,
		// Client-supplied counts are ignored.
		WordCount:          999,
		ReadingTimeMinutes: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, story.WordCount)
	storyRepo.AssertExpectations(t)
}

func TestStoryCreate_Validation(t *testing.T) {
	svc := NewStoryService(mocks.NewMockStoryRepository(t), zap.NewNop())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, &models.Story{Content: "text"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Create(context.Background(), userID, &models.Story{Title: "T", Content: "   "})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Create(context.Background(), userID, &models.Story{Title: "T", Content: "text", Length: "epic"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestStoryCreate_DefaultsLengthToMedium(t *testing.T) {
	storyRepo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(storyRepo, zap.NewNop())

	storyRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Story) bool {
		return s.Length == models.StoryLengthMedium && s.ReadingTimeMinutes == 10
	})).Return(nil).Once()

	_, err := svc.Create(context.Background(), uuid.New(), &models.Story{Title: "T", Content: "some text"})
	require.NoError(t, err)
}

func TestStoryUpdate_ContentChangeRecomputesWordCount(t *testing.T) {
	storyRepo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(storyRepo, zap.NewNop())
	userID, storyID := uuid.New(), uuid.New()

	newContent := "now there are six words here"
	upd := models.StoryUpdate{Content: &newContent}
	updated := &models.Story{ID: storyID, WordCount: 6}

	storyRepo.On("Update", mock.Anything, userID, storyID, upd, mock.MatchedBy(func(wc *int) bool {
		return wc != nil && *wc == 6
	})).Return(updated, nil).Once()

	story, err := svc.Update(context.Background(), userID, storyID, upd)
	require.NoError(t, err)
	assert.Equal(t, 6, story.WordCount)
	storyRepo.AssertExpectations(t)
}

func TestStoryUpdate_TitleOnlyLeavesWordCountAlone(t *testing.T) {
	storyRepo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(storyRepo, zap.NewNop())
	userID, storyID := uuid.New(), uuid.New()

	newTitle := "Renamed"
	upd := models.StoryUpdate{Title: &newTitle}

	storyRepo.On("Update", mock.Anything, userID, storyID, upd, (*int)(nil)).
		Return(&models.Story{ID: storyID, Title: newTitle}, nil).Once()

	_, err := svc.Update(context.Background(), userID, storyID, upd)
	require.NoError(t, err)
	storyRepo.AssertExpectations(t)
}

func TestStoryToggleFavoriteAndMarkAsRead_Delegate(t *testing.T) {
	storyRepo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(storyRepo, zap.NewNop())
	userID, storyID := uuid.New(), uuid.New()

	storyRepo.On("ToggleFavorite", mock.Anything, userID, storyID).
		Return(&models.Story{ID: storyID, IsFavorite: true}, nil).Once()
	storyRepo.On("MarkAsRead", mock.Anything, userID, storyID).
		Return(&models.Story{ID: storyID}, nil).Once()

	fav, err := svc.ToggleFavorite(context.Background(), userID, storyID)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	_, err = svc.MarkAsRead(context.Background(), userID, storyID)
	require.NoError(t, err)
	storyRepo.AssertExpectations(t)
}
