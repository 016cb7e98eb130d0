package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/ai"
	"github.com/RKBattleSLoth/DreamWeaver/internal/config"
	"github.com/RKBattleSLoth/DreamWeaver/internal/mocks"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

type generationFixture struct {
	genRepo     *mocks.MockGenerationRequestRepository
	storyRepo   *mocks.MockStoryRepository
	profileRepo *mocks.MockChildProfileRepository
	aiClient    *mocks.MockAIClient
	svc         GenerationService
}

func newGenerationFixture(t *testing.T) *generationFixture {
	f := &generationFixture{
		genRepo:     mocks.NewMockGenerationRequestRepository(t),
		storyRepo:   mocks.NewMockStoryRepository(t),
		profileRepo: mocks.NewMockChildProfileRepository(t),
		aiClient:    mocks.NewMockAIClient(t),
	}
	cfg := &config.Config{
		GenerationTimeout:         30 * time.Second,
		GenerationShutdownTimeout: 5 * time.Second,
	}
	f.svc = NewGenerationService(f.genRepo, f.storyRepo, f.profileRepo, f.aiClient, nil, cfg, zap.NewNop())
	return f
}

func (f *generationFixture) drain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.svc.Shutdown(ctx))
}

func TestSubmit_InvalidLength(t *testing.T) {
	f := newGenerationFixture(t)

	_, err := f.svc.Submit(context.Background(), uuid.New(), &models.GenerationRequest{
		ChildProfileID: uuid.New(),
		Length:         "epic",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSubmit_ProfileNotOwned(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	profileID := uuid.New()

	f.profileRepo.On("GetByID", mock.Anything, userID, profileID).
		Return(nil, models.ErrNotFound).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profileID,
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubmit_NoProfileAndNoActive(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()

	f.profileRepo.On("GetActive", mock.Anything, userID).
		Return(nil, models.ErrNotFound).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSubmit_RejectsConcurrentGeneration(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(true, nil).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	assert.ErrorIs(t, err, models.ErrUserHasActiveGeneration)
}

func TestSubmit_CreateLosesInsertRace(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	// A concurrent submit won the insert between the active check and Create;
	// the repository maps the unique violation to the sentinel.
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Return(models.ErrUserHasActiveGeneration).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	assert.ErrorIs(t, err, models.ErrUserHasActiveGeneration)

	f.drain(t)
	f.genRepo.AssertNotCalled(t, "MarkGenerating", mock.Anything, mock.Anything)
}

func TestSubmit_GeneratesStory(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	storyID := uuid.New()
	profile := &models.ChildProfile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Mia",
		Interests: []string{"dragons"},
	}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.GenerationRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*models.GenerationRequest)
			req.ID = requestID
			req.Status = models.GenerationStatusPending
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).Return(nil).Once()

	f.aiClient.On("GenerateText", mock.Anything, userID.String(), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("ai.GenerationParams")).
		Run(func(args mock.Arguments) {
			params := args.Get(4).(ai.GenerationParams)
			require.NotNil(t, params.Temperature)
			assert.InDelta(t, 0.8, *params.Temperature, 0.001)
			require.NotNil(t, params.MaxTokens)
			assert.Equal(t, 2000, *params.MaxTokens)
		}).
		Return("TITLE: The Dragon's Nap\n---\nOnce there was a sleepy dragon. The end.", ai.UsageInfo{TotalTokens: 420}, nil).Once()

	f.storyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Story")).
		Run(func(args mock.Arguments) {
			story := args.Get(1).(*models.Story)
			story.ID = storyID
			assert.Equal(t, "The Dragon's Nap", story.Title)
			assert.Equal(t, "Once there was a sleepy dragon. The end.", story.Content)
			assert.Equal(t, 8, story.WordCount)
			assert.Equal(t, 10, story.ReadingTimeMinutes)
			require.NotNil(t, story.ChildProfileID)
			assert.Equal(t, profile.ID, *story.ChildProfileID)
			require.NotNil(t, story.GenerationPrompt)
			assert.Contains(t, *story.GenerationPrompt, "Write a bedtime story for Mia.")
		}).
		Return(nil).Once()
	f.genRepo.On("MarkCompleted", mock.Anything, requestID, storyID).Return(nil).Once()

	req, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, requestID, req.ID)

	f.drain(t)
	f.genRepo.AssertExpectations(t)
	f.storyRepo.AssertExpectations(t)
	f.aiClient.AssertExpectations(t)
}

func TestSubmit_AIFailureMarksFailed(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.GenerationRequest).ID = requestID
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).Return(nil).Once()
	f.aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", ai.UsageInfo{}, errors.New("provider unavailable")).Once()
	f.genRepo.On("MarkFailed", mock.Anything, requestID, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	require.NoError(t, err)

	f.drain(t)
	f.genRepo.AssertExpectations(t)
	f.storyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_MarkGeneratingDBErrorMarksFailed(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.GenerationRequest).ID = requestID
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).
		Return(errors.New("connection reset by peer")).Once()
	f.genRepo.On("MarkFailed", mock.Anything, requestID, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	require.NoError(t, err)

	f.drain(t)
	f.genRepo.AssertExpectations(t)
	f.aiClient.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_MarkGeneratingLostRaceSkipsWork(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.GenerationRequest).ID = requestID
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).
		Return(models.ErrNotFound).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	require.NoError(t, err)

	f.drain(t)
	f.genRepo.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	f.aiClient.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_MarkCompletedDBErrorMarksFailed(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	storyID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Mia"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.GenerationRequest).ID = requestID
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).Return(nil).Once()
	f.aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("TITLE: T\n---\nBody.", ai.UsageInfo{}, nil).Once()
	f.storyRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Story).ID = storyID }).
		Return(nil).Once()
	f.genRepo.On("MarkCompleted", mock.Anything, requestID, storyID).
		Return(errors.New("connection reset by peer")).Once()
	f.genRepo.On("MarkFailed", mock.Anything, requestID, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{
		ChildProfileID: profile.ID,
	})
	require.NoError(t, err)

	f.drain(t)
	f.genRepo.AssertExpectations(t)
}

func TestSubmit_UsesActiveProfileWhenNoneGiven(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()
	storyID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Theo", IsActive: true}

	f.profileRepo.On("GetActive", mock.Anything, userID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*models.GenerationRequest)
			assert.Equal(t, profile.ID, req.ChildProfileID)
			req.ID = requestID
		}).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).Return(nil).Once()
	f.aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("TITLE: T\n---\nBody.", ai.UsageInfo{}, nil).Once()
	f.storyRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Story).ID = storyID }).
		Return(nil).Once()
	f.genRepo.On("MarkCompleted", mock.Anything, requestID, storyID).Return(nil).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{})
	require.NoError(t, err)
	f.drain(t)
}

func TestSubmit_CoverFailureKeepsStoryCompleted(t *testing.T) {
	f := newGenerationFixture(t)
	covers := mocks.NewMockCoverService(t)
	cfg := &config.Config{
		GenerationTimeout:         30 * time.Second,
		GenerationShutdownTimeout: 5 * time.Second,
	}
	f.svc = NewGenerationService(f.genRepo, f.storyRepo, f.profileRepo, f.aiClient, covers, cfg, zap.NewNop())

	userID := uuid.New()
	requestID := uuid.New()
	storyID := uuid.New()
	profile := &models.ChildProfile{ID: uuid.New(), UserID: userID, Name: "Ava", PreferredArtStyle: "watercolor"}

	f.profileRepo.On("GetByID", mock.Anything, userID, profile.ID).Return(profile, nil).Once()
	f.genRepo.On("HasActiveRequest", mock.Anything, userID).Return(false, nil).Once()
	f.genRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*models.GenerationRequest).ID = requestID }).
		Return(nil).Once()
	f.genRepo.On("MarkGenerating", mock.Anything, requestID).Return(nil).Once()
	f.aiClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("TITLE: T\n---\nBody.", ai.UsageInfo{}, nil).Once()
	f.storyRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Story).ID = storyID }).
		Return(nil).Once()
	f.genRepo.On("MarkCompleted", mock.Anything, requestID, storyID).Return(nil).Once()
	covers.On("GenerateCover", mock.Anything, storyID, "T", "watercolor").
		Return("", errors.New("image server down")).Once()

	_, err := f.svc.Submit(context.Background(), userID, &models.GenerationRequest{ChildProfileID: profile.ID})
	require.NoError(t, err)

	f.drain(t)
	f.storyRepo.AssertNotCalled(t, "SetCoverImageURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.genRepo.AssertExpectations(t)
}

func TestStatus_OwnerScoped(t *testing.T) {
	f := newGenerationFixture(t)
	userID := uuid.New()
	requestID := uuid.New()

	f.genRepo.On("GetByID", mock.Anything, userID, requestID).
		Return(nil, models.ErrNotFound).Once()

	_, err := f.svc.Status(context.Background(), userID, requestID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
