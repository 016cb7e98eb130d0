package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// Compile-time check to ensure pgStoryRepository implements StoryRepository
var _ interfaces.StoryRepository = (*pgStoryRepository)(nil)

const storyColumns = `id, user_id, child_profile_id, title, content, theme, character_name,
	length, reading_time_minutes, moral_lessons, is_favorite, word_count,
	generation_prompt, cover_image_url, last_read_at, created_at, updated_at`

const createStoryQuery = `
	INSERT INTO stories (user_id, child_profile_id, title, content, theme, character_name,
		length, reading_time_minutes, moral_lessons, is_favorite, word_count, generation_prompt)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id, created_at, updated_at`

const getStoryByIDQuery = `
	SELECT ` + storyColumns + `
	FROM stories
	WHERE id = $1 AND user_id = $2`

const listStoriesQuery = `
	SELECT ` + storyColumns + `
	FROM stories
	WHERE user_id = $1
	ORDER BY created_at DESC`

const listFavoriteStoriesQuery = `
	SELECT ` + storyColumns + `
	FROM stories
	WHERE user_id = $1 AND is_favorite
	ORDER BY created_at DESC`

const deleteStoryQuery = `
	DELETE FROM stories WHERE id = $1 AND user_id = $2`

const toggleFavoriteQuery = `
	UPDATE stories SET is_favorite = NOT is_favorite, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND user_id = $2
	RETURNING ` + storyColumns

// last_read_at is only stamped once: the first read wins.
const markAsReadQuery = `
	UPDATE stories SET last_read_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND user_id = $2 AND last_read_at IS NULL`

const setCoverImageURLQuery = `
	UPDATE stories SET cover_image_url = $3, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND user_id = $2`

type pgStoryRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgStoryRepository creates a new PostgreSQL-backed StoryRepository.
func NewPgStoryRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

func scanStory(row pgx.Row, s *models.Story) error {
	return row.Scan(
		&s.ID, &s.UserID, &s.ChildProfileID, &s.Title, &s.Content, &s.Theme, &s.CharacterName,
		&s.Length, &s.ReadingTimeMinutes, &s.MoralLessons, &s.IsFavorite, &s.WordCount,
		&s.GenerationPrompt, &s.CoverImageURL, &s.LastReadAt, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create inserts a new story.
func (r *pgStoryRepository) Create(ctx context.Context, story *models.Story) error {
	logFields := []zap.Field{zap.String("userID", story.UserID.String()), zap.String("title", story.Title)}
	r.logger.Debug("Creating story", logFields...)

	if story.MoralLessons == nil {
		story.MoralLessons = []string{}
	}

	err := r.db.QueryRow(ctx, createStoryQuery,
		story.UserID, story.ChildProfileID, story.Title, story.Content, story.Theme,
		story.CharacterName, story.Length, story.ReadingTimeMinutes, story.MoralLessons,
		story.IsFavorite, story.WordCount, story.GenerationPrompt,
	).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create story: %w", err)
	}

	r.logger.Info("Story created", zap.String("storyID", story.ID.String()), zap.String("userID", story.UserID.String()))
	return nil
}

// GetByID retrieves a story owned by the given user.
func (r *pgStoryRepository) GetByID(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	story := &models.Story{}
	err := scanStory(r.db.QueryRow(ctx, getStoryByIDQuery, storyID, userID), story)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get story", zap.Error(err), zap.String("storyID", storyID.String()))
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return story, nil
}

// ListByUser returns all stories of a user, newest first.
func (r *pgStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	if err := pgxscan.Select(ctx, r.db, &stories, listStoriesQuery, userID); err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// ListFavorites returns the user's favorite stories, newest first.
func (r *pgStoryRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	if err := pgxscan.Select(ctx, r.db, &stories, listFavoriteStoriesQuery, userID); err != nil {
		r.logger.Error("Failed to list favorite stories", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list favorite stories: %w", err)
	}
	return stories, nil
}

// Update applies a partial update and returns the updated story.
// wordCount is non-nil exactly when the caller changed the content.
func (r *pgStoryRepository) Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate, wordCount *int) (*models.Story, error) {
	queryBase := "UPDATE stories SET updated_at = CURRENT_TIMESTAMP"
	args := []interface{}{}
	argID := 1

	addField := func(column string, value interface{}) {
		queryBase += fmt.Sprintf(", %s = $%d", column, argID)
		args = append(args, value)
		argID++
	}

	if upd.Title != nil {
		addField("title", *upd.Title)
	}
	if upd.Content != nil {
		addField("content", *upd.Content)
	}
	if upd.Theme != nil {
		addField("theme", *upd.Theme)
	}
	if upd.CharacterName != nil {
		addField("character_name", *upd.CharacterName)
	}
	if upd.MoralLessons != nil {
		addField("moral_lessons", upd.MoralLessons)
	}
	if wordCount != nil {
		addField("word_count", *wordCount)
	}

	if len(args) == 0 {
		r.logger.Debug("Update called with no fields to update", zap.String("storyID", storyID.String()))
		return r.GetByID(ctx, userID, storyID)
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING ", argID, argID+1) + storyColumns
	args = append(args, storyID, userID)

	story := &models.Story{}
	err := scanStory(r.db.QueryRow(ctx, query, args...), story)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found for update", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to update story", zap.Error(err), zap.String("storyID", storyID.String()))
		return nil, fmt.Errorf("failed to update story: %w", err)
	}

	r.logger.Info("Story updated", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
	return story, nil
}

// Delete removes a story owned by the given user.
func (r *pgStoryRepository) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteStoryQuery, storyID, userID)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.Error(err), zap.String("storyID", storyID.String()))
		return fmt.Errorf("failed to delete story: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Debug("Story not found for delete", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
		return models.ErrNotFound
	}
	r.logger.Info("Story deleted", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
	return nil
}

// ToggleFavorite atomically flips is_favorite and returns the updated story.
func (r *pgStoryRepository) ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	story := &models.Story{}
	err := scanStory(r.db.QueryRow(ctx, toggleFavoriteQuery, storyID, userID), story)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found for favorite toggle", zap.String("storyID", storyID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to toggle story favorite", zap.Error(err), zap.String("storyID", storyID.String()))
		return nil, fmt.Errorf("failed to toggle story favorite: %w", err)
	}
	r.logger.Info("Story favorite toggled", zap.String("storyID", storyID.String()), zap.Bool("isFavorite", story.IsFavorite))
	return story, nil
}

// MarkAsRead stamps last_read_at on first read and returns the story.
func (r *pgStoryRepository) MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	cmdTag, err := r.db.Exec(ctx, markAsReadQuery, storyID, userID)
	if err != nil {
		r.logger.Error("Failed to mark story as read", zap.Error(err), zap.String("storyID", storyID.String()))
		return nil, fmt.Errorf("failed to mark story as read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the story does not exist or it was already read.
		// GetByID distinguishes the two.
		r.logger.Debug("Story already read or missing", zap.String("storyID", storyID.String()))
	}
	return r.GetByID(ctx, userID, storyID)
}

// SetCoverImageURL stores the illustration URL for a story.
func (r *pgStoryRepository) SetCoverImageURL(ctx context.Context, userID, storyID uuid.UUID, url string) error {
	cmdTag, err := r.db.Exec(ctx, setCoverImageURLQuery, storyID, userID, url)
	if err != nil {
		r.logger.Error("Failed to set story cover image URL", zap.Error(err), zap.String("storyID", storyID.String()))
		return fmt.Errorf("failed to set story cover image url: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
