package handler

import (
	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// The refresh token is optional on logout; without it only the access token
// is revoked.
type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type createChildProfileRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               *int     `json:"age"`
	Grade             *string  `json:"grade"`
	Interests         []string `json:"interests"`
	FavoriteThemes    []string `json:"favorite_themes"`
	ReadingLevel      *string  `json:"reading_level"`
	ContentSafety     string   `json:"content_safety"`
	PreferredArtStyle string   `json:"preferred_art_style"`
	AvatarURL         *string  `json:"avatar_url"`
}

type updateChildProfileRequest struct {
	Name              *string  `json:"name"`
	Age               *int     `json:"age"`
	Grade             *string  `json:"grade"`
	Interests         []string `json:"interests"`
	FavoriteThemes    []string `json:"favorite_themes"`
	ReadingLevel      *string  `json:"reading_level"`
	ContentSafety     *string  `json:"content_safety"`
	PreferredArtStyle *string  `json:"preferred_art_style"`
	AvatarURL         *string  `json:"avatar_url"`
}

type createStoryRequest struct {
	Title          string     `json:"title" binding:"required"`
	Content        string     `json:"content" binding:"required"`
	ChildProfileID *uuid.UUID `json:"child_profile_id"`
	Theme          *string    `json:"theme"`
	CharacterName  *string    `json:"character_name"`
	Length         string     `json:"length"`
	MoralLessons   []string   `json:"moral_lessons"`
}

type updateStoryRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	Theme         *string  `json:"theme"`
	CharacterName *string  `json:"character_name"`
	MoralLessons  []string `json:"moral_lessons"`
}

type generateStoryRequest struct {
	ChildProfileID   *uuid.UUID              `json:"child_profile_id"`
	Theme            *string                 `json:"theme"`
	Length           string                  `json:"length"`
	CustomPrompt     *string                 `json:"custom_prompt"`
	ReadingLevel     *string                 `json:"reading_level"`
	SpecialInterests []string                `json:"special_interests"`
	MoralLessons     []string                `json:"moral_lessons"`
	CustomCharacter  *models.CustomCharacter `json:"custom_character"`
}

type generateStoryResponse struct {
	RequestID uuid.UUID               `json:"request_id"`
	Status    models.GenerationStatus `json:"status"`
}

type generationStatusResponse struct {
	RequestID    uuid.UUID               `json:"request_id"`
	Status       models.GenerationStatus `json:"status"`
	StoryID      *uuid.UUID              `json:"story_id,omitempty"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
}

type meResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
