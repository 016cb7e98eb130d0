package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/ai"
	"github.com/RKBattleSLoth/DreamWeaver/internal/config"
	"github.com/RKBattleSLoth/DreamWeaver/internal/images"
	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

const (
	storyTemperature = 0.8
	storyMaxTokens   = 2000
)

// GenerationService accepts story generation requests and runs them on
// in-process worker goroutines. Submit returns immediately; clients poll
// Status until the request reaches a terminal state.
type GenerationService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) (*models.GenerationRequest, error)
	Status(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error)
	// Shutdown waits for in-flight generations to finish, bounded by ctx.
	Shutdown(ctx context.Context) error
}

// Compile-time check to ensure generationServiceImpl implements GenerationService
var _ GenerationService = (*generationServiceImpl)(nil)

type generationServiceImpl struct {
	genRepo     interfaces.GenerationRequestRepository
	storyRepo   interfaces.StoryRepository
	profileRepo interfaces.ChildProfileRepository
	aiClient    ai.Client
	covers      images.CoverService // nil when illustrations are disabled
	cfg         *config.Config
	logger      *zap.Logger
	wg          sync.WaitGroup
}

// NewGenerationService creates a new instance of generationServiceImpl.
// covers may be nil, in which case no illustrations are generated.
func NewGenerationService(
	genRepo interfaces.GenerationRequestRepository,
	storyRepo interfaces.StoryRepository,
	profileRepo interfaces.ChildProfileRepository,
	aiClient ai.Client,
	covers images.CoverService,
	cfg *config.Config,
	logger *zap.Logger,
) GenerationService {
	return &generationServiceImpl{
		genRepo:     genRepo,
		storyRepo:   storyRepo,
		profileRepo: profileRepo,
		aiClient:    aiClient,
		covers:      covers,
		cfg:         cfg,
		logger:      logger.Named("GenerationService"),
	}
}

// Submit validates the request, persists it as pending and hands it to a
// worker goroutine. A user may only have one pending/generating request.
func (s *generationServiceImpl) Submit(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) (*models.GenerationRequest, error) {
	logFields := []zap.Field{zap.String("userID", userID.String())}

	if req.Length == "" {
		req.Length = models.StoryLengthMedium
	}
	if !models.IsValidStoryLength(req.Length) {
		return nil, fmt.Errorf("invalid story length %q: %w", req.Length, models.ErrInvalidInput)
	}
	if req.ReadingLevel != nil && !models.IsValidReadingLevel(*req.ReadingLevel) {
		return nil, fmt.Errorf("invalid reading level %q: %w", *req.ReadingLevel, models.ErrInvalidInput)
	}

	req.UserID = userID

	// Resolve the target profile: an explicit id must belong to the caller,
	// no id means the caller's active profile.
	var profile *models.ChildProfile
	var err error
	if req.ChildProfileID == uuid.Nil {
		profile, err = s.profileRepo.GetActive(ctx, userID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				s.logger.Warn("Submit without profile id and no active profile", logFields...)
				return nil, fmt.Errorf("no child profile specified and no active profile: %w", models.ErrInvalidInput)
			}
			return nil, err
		}
		req.ChildProfileID = profile.ID
	} else {
		profile, err = s.profileRepo.GetByID(ctx, userID, req.ChildProfileID)
		if err != nil {
			return nil, err
		}
	}

	hasActive, err := s.genRepo.HasActiveRequest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		s.logger.Warn("Submit rejected: user already has an active generation", logFields...)
		return nil, models.ErrUserHasActiveGeneration
	}

	if err := s.genRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.wg.Add(1)
	go s.process(*req, *profile)

	s.logger.Info("Generation request accepted",
		zap.String("requestID", req.ID.String()),
		zap.String("profileID", profile.ID.String()),
		zap.String("userID", userID.String()),
	)
	return req, nil
}

// Status returns the current state of a request, owner-scoped.
func (s *generationServiceImpl) Status(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error) {
	return s.genRepo.GetByID(ctx, userID, requestID)
}

// Shutdown blocks until all worker goroutines finish or ctx is done.
func (s *generationServiceImpl) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("All in-flight generations drained")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Shutdown timed out waiting for in-flight generations")
		return ctx.Err()
	}
}

// process runs one generation from pending to a terminal state. It owns its
// own context: the submitting HTTP request is long gone by the time the model
// responds.
func (s *generationServiceImpl) process(req models.GenerationRequest, profile models.ChildProfile) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.GenerationTimeout)
	defer cancel()

	log := s.logger.With(zap.String("requestID", req.ID.String()), zap.String("userID", req.UserID.String()))

	if err := s.genRepo.MarkGenerating(ctx, req.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// The request left the pending state under us; nothing to do.
			log.Warn("Request is no longer pending, skipping", zap.Error(err))
			return
		}
		// A request stuck in a non-terminal state blocks every future submit
		// for this user, so persistence errors route to failed as well.
		log.Error("Failed to mark request as generating", zap.Error(err))
		s.fail(req.ID, fmt.Sprintf("failed to start generation: %v", err))
		return
	}

	systemPrompt, userPrompt := ai.BuildStoryPrompt(&profile, &req)

	temperature := storyTemperature
	maxTokens := storyMaxTokens
	params := ai.GenerationParams{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	text, usage, err := s.aiClient.GenerateText(ctx, req.UserID.String(), systemPrompt, userPrompt, params)
	if err != nil {
		log.Error("Story generation failed", zap.Error(err))
		s.fail(req.ID, fmt.Sprintf("story generation failed: %v", err))
		return
	}
	log.Debug("Story text generated",
		zap.Int("totalTokens", usage.TotalTokens),
		zap.Bool("tokensEstimated", usage.Estimated),
	)

	title, content := ai.ParseStoryResponse(text)

	profileID := profile.ID
	story := &models.Story{
		UserID:             req.UserID,
		ChildProfileID:     &profileID,
		Title:              title,
		Content:            content,
		Theme:              req.Theme,
		Length:             req.Length,
		ReadingTimeMinutes: models.ReadingTimeForLength(req.Length),
		MoralLessons:       req.MoralLessons,
		WordCount:          models.CountWords(content),
		GenerationPrompt:   &userPrompt,
	}
	if req.CustomCharacter != nil && req.CustomCharacter.Name != "" {
		name := req.CustomCharacter.Name
		story.CharacterName = &name
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		log.Error("Failed to persist generated story", zap.Error(err))
		s.fail(req.ID, fmt.Sprintf("failed to save story: %v", err))
		return
	}

	if err := s.genRepo.MarkCompleted(ctx, req.ID, story.ID); err != nil {
		log.Error("Failed to mark request as completed", zap.Error(err), zap.String("storyID", story.ID.String()))
		if !errors.Is(err, models.ErrNotFound) {
			// The story is saved but the request row could not record it;
			// move the request to failed rather than strand it in generating.
			s.fail(req.ID, fmt.Sprintf("failed to record completion: %v", err))
		}
		return
	}

	log.Info("Story generation completed",
		zap.String("storyID", story.ID.String()),
		zap.String("title", story.Title),
		zap.Int("wordCount", story.WordCount),
	)

	// Illustration failures only log; the story stays completed.
	if s.covers != nil {
		coverURL, err := s.covers.GenerateCover(ctx, story.ID, story.Title, profile.PreferredArtStyle)
		if err != nil {
			log.Warn("Cover illustration failed", zap.Error(err), zap.String("storyID", story.ID.String()))
			return
		}
		if err := s.storyRepo.SetCoverImageURL(ctx, req.UserID, story.ID, coverURL); err != nil {
			log.Warn("Failed to store cover image URL", zap.Error(err), zap.String("storyID", story.ID.String()))
		}
	}
}

// fail moves the request to the failed state. It uses a fresh context so a
// generation timeout does not also doom the failure write.
func (s *generationServiceImpl) fail(requestID uuid.UUID, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.GenerationShutdownTimeout)
	defer cancel()

	if err := s.genRepo.MarkFailed(ctx, requestID, message); err != nil {
		s.logger.Error("Failed to mark request as failed",
			zap.Error(err), zap.String("requestID", requestID.String()))
	}
}
