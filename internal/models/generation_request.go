package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationStatus is the lifecycle state of a story generation request.
// Allowed transitions: pending -> generating -> completed | failed.
// Terminal states never change again.
type GenerationStatus string

const (
	GenerationStatusPending    GenerationStatus = "pending"
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// IsTerminal reports whether the status is a final state.
func (s GenerationStatus) IsTerminal() bool {
	return s == GenerationStatusCompleted || s == GenerationStatusFailed
}

// CustomCharacter is an optional character description supplied by the user
// for the generated story.
type CustomCharacter struct {
	Name        string `json:"name"`
	Appearance  string `json:"appearance,omitempty"`
	Personality string `json:"personality,omitempty"`
}

// GenerationRequest tracks one asynchronous story generation.
// A completed request carries StoryID and no ErrorMessage; a failed request
// carries ErrorMessage and no StoryID. The two are mutually exclusive.
type GenerationRequest struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	UserID           uuid.UUID        `db:"user_id" json:"userId"`
	ChildProfileID   uuid.UUID        `db:"child_profile_id" json:"childProfileId"`
	Theme            *string          `db:"theme" json:"theme,omitempty"`
	Length           string           `db:"length" json:"length"`
	CustomPrompt     *string          `db:"custom_prompt" json:"customPrompt,omitempty"`
	ReadingLevel     *string          `db:"reading_level" json:"readingLevel,omitempty"`
	SpecialInterests []string         `db:"special_interests" json:"specialInterests"`
	MoralLessons     []string         `db:"moral_lessons" json:"moralLessons"`
	CustomCharacter  *CustomCharacter `db:"custom_character" json:"customCharacter,omitempty"`
	Status           GenerationStatus `db:"status" json:"status"`
	StoryID          *uuid.UUID       `db:"story_id" json:"storyId,omitempty"`
	ErrorMessage     *string          `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt        time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updatedAt"`
}
