package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// Compile-time check to ensure pgChildProfileRepository implements ChildProfileRepository
var _ interfaces.ChildProfileRepository = (*pgChildProfileRepository)(nil)

const childProfileColumns = `id, user_id, name, age, grade, interests, favorite_themes,
	reading_level, content_safety, preferred_art_style, avatar_url, is_active, created_at, updated_at`

const createChildProfileQuery = `
	INSERT INTO child_profiles (user_id, name, age, grade, interests, favorite_themes,
		reading_level, content_safety, preferred_art_style, avatar_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, is_active, created_at, updated_at`

const getChildProfileByIDQuery = `
	SELECT ` + childProfileColumns + `
	FROM child_profiles
	WHERE id = $1 AND user_id = $2`

const listChildProfilesQuery = `
	SELECT ` + childProfileColumns + `
	FROM child_profiles
	WHERE user_id = $1
	ORDER BY created_at DESC`

const getActiveChildProfileQuery = `
	SELECT ` + childProfileColumns + `
	FROM child_profiles
	WHERE user_id = $1 AND is_active`

const deleteChildProfileQuery = `
	DELETE FROM child_profiles WHERE id = $1 AND user_id = $2`

const deactivateChildProfilesQuery = `
	UPDATE child_profiles SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
	WHERE user_id = $1 AND is_active`

const activateChildProfileQuery = `
	UPDATE child_profiles SET is_active = TRUE, updated_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND user_id = $2`

type pgChildProfileRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgChildProfileRepository creates a new PostgreSQL-backed ChildProfileRepository.
func NewPgChildProfileRepository(pool *pgxpool.Pool, logger *zap.Logger) interfaces.ChildProfileRepository {
	return &pgChildProfileRepository{
		pool:   pool,
		logger: logger.Named("PgChildProfileRepo"),
	}
}

func scanChildProfile(row pgx.Row, p *models.ChildProfile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Age, &p.Grade, &p.Interests, &p.FavoriteThemes,
		&p.ReadingLevel, &p.ContentSafety, &p.PreferredArtStyle, &p.AvatarURL,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create inserts a new child profile.
func (r *pgChildProfileRepository) Create(ctx context.Context, profile *models.ChildProfile) error {
	logFields := []zap.Field{zap.String("userID", profile.UserID.String()), zap.String("name", profile.Name)}
	r.logger.Debug("Creating child profile", logFields...)

	if profile.Interests == nil {
		profile.Interests = []string{}
	}
	if profile.FavoriteThemes == nil {
		profile.FavoriteThemes = []string{}
	}
	if profile.ContentSafety == "" {
		profile.ContentSafety = models.DefaultContentSafety
	}
	if profile.PreferredArtStyle == "" {
		profile.PreferredArtStyle = models.DefaultArtStyle
	}

	err := r.pool.QueryRow(ctx, createChildProfileQuery,
		profile.UserID, profile.Name, profile.Age, profile.Grade,
		profile.Interests, profile.FavoriteThemes, profile.ReadingLevel,
		profile.ContentSafety, profile.PreferredArtStyle, profile.AvatarURL,
	).Scan(&profile.ID, &profile.IsActive, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create child profile", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create child profile: %w", err)
	}

	r.logger.Info("Child profile created", zap.String("profileID", profile.ID.String()), zap.String("userID", profile.UserID.String()))
	return nil
}

// GetByID retrieves a child profile owned by the given user.
func (r *pgChildProfileRepository) GetByID(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	profile := &models.ChildProfile{}
	err := scanChildProfile(r.pool.QueryRow(ctx, getChildProfileByIDQuery, profileID, userID), profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Child profile not found", zap.String("profileID", profileID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get child profile", zap.Error(err), zap.String("profileID", profileID.String()))
		return nil, fmt.Errorf("failed to get child profile: %w", err)
	}
	return profile, nil
}

// ListByUser returns all profiles of a user, newest first.
func (r *pgChildProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error) {
	rows, err := r.pool.Query(ctx, listChildProfilesQuery, userID)
	if err != nil {
		r.logger.Error("Failed to query child profiles", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to query child profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]models.ChildProfile, 0)
	for rows.Next() {
		var p models.ChildProfile
		if err := scanChildProfile(rows, &p); err != nil {
			r.logger.Error("Failed to scan child profile row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan child profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating child profile rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating child profile rows: %w", err)
	}
	return profiles, nil
}

// GetActive returns the user's active profile.
func (r *pgChildProfileRepository) GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error) {
	profile := &models.ChildProfile{}
	err := scanChildProfile(r.pool.QueryRow(ctx, getActiveChildProfileQuery, userID), profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("No active child profile", zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get active child profile", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to get active child profile: %w", err)
	}
	return profile, nil
}

// Update applies a partial update and returns the updated profile.
func (r *pgChildProfileRepository) Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error) {
	queryBase := "UPDATE child_profiles SET updated_at = CURRENT_TIMESTAMP"
	args := []interface{}{}
	argID := 1

	addField := func(column string, value interface{}) {
		queryBase += fmt.Sprintf(", %s = $%d", column, argID)
		args = append(args, value)
		argID++
	}

	if upd.Name != nil {
		addField("name", *upd.Name)
	}
	if upd.Age != nil {
		addField("age", *upd.Age)
	}
	if upd.Grade != nil {
		addField("grade", *upd.Grade)
	}
	if upd.Interests != nil {
		addField("interests", upd.Interests)
	}
	if upd.FavoriteThemes != nil {
		addField("favorite_themes", upd.FavoriteThemes)
	}
	if upd.ReadingLevel != nil {
		addField("reading_level", *upd.ReadingLevel)
	}
	if upd.ContentSafety != nil {
		addField("content_safety", *upd.ContentSafety)
	}
	if upd.PreferredArtStyle != nil {
		addField("preferred_art_style", *upd.PreferredArtStyle)
	}
	if upd.AvatarURL != nil {
		addField("avatar_url", *upd.AvatarURL)
	}

	if len(args) == 0 {
		r.logger.Debug("Update called with no fields to update", zap.String("profileID", profileID.String()))
		return r.GetByID(ctx, userID, profileID)
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING ", argID, argID+1) + childProfileColumns
	args = append(args, profileID, userID)

	profile := &models.ChildProfile{}
	err := scanChildProfile(r.pool.QueryRow(ctx, query, args...), profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Child profile not found for update", zap.String("profileID", profileID.String()), zap.String("userID", userID.String()))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to update child profile", zap.Error(err), zap.String("profileID", profileID.String()))
		return nil, fmt.Errorf("failed to update child profile: %w", err)
	}

	r.logger.Info("Child profile updated", zap.String("profileID", profileID.String()), zap.String("userID", userID.String()))
	return profile, nil
}

// Delete removes a profile owned by the given user.
func (r *pgChildProfileRepository) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, deleteChildProfileQuery, profileID, userID)
	if err != nil {
		r.logger.Error("Failed to delete child profile", zap.Error(err), zap.String("profileID", profileID.String()))
		return fmt.Errorf("failed to delete child profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Debug("Child profile not found for delete", zap.String("profileID", profileID.String()), zap.String("userID", userID.String()))
		return models.ErrNotFound
	}
	r.logger.Info("Child profile deleted", zap.String("profileID", profileID.String()), zap.String("userID", userID.String()))
	return nil
}

// SetActive atomically switches the user's active profile: all profiles of
// the user are deactivated, then the requested one is activated. Runs in a
// transaction so a failure leaves the previous active profile in place.
func (r *pgChildProfileRepository) SetActive(ctx context.Context, userID, profileID uuid.UUID) error {
	logFields := []zap.Field{zap.String("userID", userID.String()), zap.String("profileID", profileID.String())}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin transaction for SetActive", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, deactivateChildProfilesQuery, userID); err != nil {
		r.logger.Error("Failed to deactivate child profiles", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to deactivate child profiles: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, activateChildProfileQuery, profileID, userID)
	if err != nil {
		r.logger.Error("Failed to activate child profile", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to activate child profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Debug("Child profile not found for activation", logFields...)
		return models.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit SetActive transaction", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Active child profile switched", logFields...)
	return nil
}
