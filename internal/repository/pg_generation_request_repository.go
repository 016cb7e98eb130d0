package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// Compile-time check to ensure pgGenerationRequestRepository implements GenerationRequestRepository
var _ interfaces.GenerationRequestRepository = (*pgGenerationRequestRepository)(nil)

const generationRequestColumns = `id, user_id, child_profile_id, theme, length, custom_prompt,
	reading_level, special_interests, moral_lessons, custom_character, status, story_id,
	error_message, created_at, updated_at`

const createGenerationRequestQuery = `
	INSERT INTO story_generation_requests (user_id, child_profile_id, theme, length, custom_prompt,
		reading_level, special_interests, moral_lessons, custom_character, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
	RETURNING id, status, created_at, updated_at`

const getGenerationRequestByIDQuery = `
	SELECT ` + generationRequestColumns + `
	FROM story_generation_requests
	WHERE id = $1 AND user_id = $2`

const hasActiveGenerationRequestQuery = `
	SELECT EXISTS (
		SELECT 1 FROM story_generation_requests
		WHERE user_id = $1 AND status IN ('pending', 'generating')
	)`

// Transitions are guarded in SQL: the UPDATE only applies when the row is
// still in the expected source status, so a stale worker cannot clobber a
// request that already moved on.
const markGeneratingQuery = `
	UPDATE story_generation_requests
	SET status = 'generating', updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND status = 'pending'`

const markCompletedQuery = `
	UPDATE story_generation_requests
	SET status = 'completed', story_id = $2, error_message = NULL, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND status = 'generating'`

const markFailedQuery = `
	UPDATE story_generation_requests
	SET status = 'failed', error_message = $2, story_id = NULL, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND status IN ('pending', 'generating')`

type pgGenerationRequestRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgGenerationRequestRepository creates a new PostgreSQL-backed GenerationRequestRepository.
func NewPgGenerationRequestRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.GenerationRequestRepository {
	return &pgGenerationRequestRepository{
		db:     db,
		logger: logger.Named("PgGenerationRequestRepo"),
	}
}

func scanGenerationRequest(row pgx.Row, gr *models.GenerationRequest) error {
	return row.Scan(
		&gr.ID, &gr.UserID, &gr.ChildProfileID, &gr.Theme, &gr.Length, &gr.CustomPrompt,
		&gr.ReadingLevel, &gr.SpecialInterests, &gr.MoralLessons, &gr.CustomCharacter,
		&gr.Status, &gr.StoryID, &gr.ErrorMessage, &gr.CreatedAt, &gr.UpdatedAt,
	)
}

// Create inserts a new request in the pending status.
func (r *pgGenerationRequestRepository) Create(ctx context.Context, req *models.GenerationRequest) error {
	logFields := []zap.Field{zap.String("userID", req.UserID.String())}
	r.logger.Debug("Creating generation request", logFields...)

	if req.SpecialInterests == nil {
		req.SpecialInterests = []string{}
	}
	if req.MoralLessons == nil {
		req.MoralLessons = []string{}
	}

	err := r.db.QueryRow(ctx, createGenerationRequestQuery,
		req.UserID, req.ChildProfileID, req.Theme, req.Length, req.CustomPrompt,
		req.ReadingLevel, req.SpecialInterests, req.MoralLessons, req.CustomCharacter,
	).Scan(&req.ID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		// The partial unique index on (user_id) over pending/generating rows
		// makes the one-in-flight-request rule hold under concurrent submits.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			r.logger.Warn("User already has an active generation request", logFields...)
			return models.ErrUserHasActiveGeneration
		}
		r.logger.Error("Failed to create generation request", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create generation request: %w", err)
	}

	r.logger.Info("Generation request created", zap.String("requestID", req.ID.String()), zap.String("userID", req.UserID.String()))
	return nil
}

// GetByID retrieves a request owned by the given user.
func (r *pgGenerationRequestRepository) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error) {
	req := &models.GenerationRequest{}
	err := scanGenerationRequest(r.db.QueryRow(ctx, getGenerationRequestByIDQuery, requestID, userID), req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Generation request not found", zap.String("requestID", requestID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get generation request", zap.Error(err), zap.String("requestID", requestID.String()))
		return nil, fmt.Errorf("failed to get generation request: %w", err)
	}
	return req, nil
}

// HasActiveRequest reports whether the user has a pending or generating request.
func (r *pgGenerationRequestRepository) HasActiveRequest(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasActiveGenerationRequestQuery, userID).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check active generation request", zap.Error(err), zap.String("userID", userID.String()))
		return false, fmt.Errorf("failed to check active generation request: %w", err)
	}
	return exists, nil
}

// MarkGenerating transitions a pending request to generating.
func (r *pgGenerationRequestRepository) MarkGenerating(ctx context.Context, requestID uuid.UUID) error {
	return r.transition(ctx, requestID, markGeneratingQuery, "generating", requestID)
}

// MarkCompleted transitions a generating request to completed, linking the story.
func (r *pgGenerationRequestRepository) MarkCompleted(ctx context.Context, requestID, storyID uuid.UUID) error {
	return r.transition(ctx, requestID, markCompletedQuery, "completed", requestID, storyID)
}

// MarkFailed transitions a pending or generating request to failed.
func (r *pgGenerationRequestRepository) MarkFailed(ctx context.Context, requestID uuid.UUID, errorMessage string) error {
	return r.transition(ctx, requestID, markFailedQuery, "failed", requestID, errorMessage)
}

func (r *pgGenerationRequestRepository) transition(ctx context.Context, requestID uuid.UUID, query, target string, args ...interface{}) error {
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to transition generation request",
			zap.Error(err), zap.String("requestID", requestID.String()), zap.String("target", target))
		return fmt.Errorf("failed to transition generation request to %s: %w", target, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Generation request transition did not apply",
			zap.String("requestID", requestID.String()), zap.String("target", target))
		return models.ErrNotFound
	}
	r.logger.Info("Generation request transitioned",
		zap.String("requestID", requestID.String()), zap.String("target", target))
	return nil
}
