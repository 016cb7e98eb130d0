package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Story length presets. The preset drives the word target given to the
// generator and the estimated reading time shown to the user.
const (
	StoryLengthShort  = "short"
	StoryLengthMedium = "medium"
	StoryLengthLong   = "long"
)

// Story is a saved bedtime story, either generated or created manually.
type Story struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	UserID             uuid.UUID  `db:"user_id" json:"userId"`
	ChildProfileID     *uuid.UUID `db:"child_profile_id" json:"childProfileId,omitempty"`
	Title              string     `db:"title" json:"title"`
	Content            string     `db:"content" json:"content"`
	Theme              *string    `db:"theme" json:"theme,omitempty"`
	CharacterName      *string    `db:"character_name" json:"characterName,omitempty"`
	Length             string     `db:"length" json:"length"`
	ReadingTimeMinutes int        `db:"reading_time_minutes" json:"readingTimeMinutes"`
	MoralLessons       []string   `db:"moral_lessons" json:"moralLessons"`
	IsFavorite         bool       `db:"is_favorite" json:"isFavorite"`
	WordCount          int        `db:"word_count" json:"wordCount"`
	GenerationPrompt   *string    `db:"generation_prompt" json:"generationPrompt,omitempty"`
	CoverImageURL      *string    `db:"cover_image_url" json:"coverImageUrl,omitempty"`
	LastReadAt         *time.Time `db:"last_read_at" json:"lastReadAt,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updatedAt"`
}

// StoryUpdate carries the optional fields of a partial story update.
type StoryUpdate struct {
	Title         *string
	Content       *string
	Theme         *string
	CharacterName *string
	MoralLessons  []string
}

// IsValidStoryLength reports whether the given value is a known length preset.
func IsValidStoryLength(length string) bool {
	switch length {
	case StoryLengthShort, StoryLengthMedium, StoryLengthLong:
		return true
	}
	return false
}

// CountWords returns the number of whitespace-separated words in content.
// Word counts stored on stories are always derived with this function.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReadingTimeForLength maps a length preset to an estimated reading time in
// minutes. Unknown presets fall back to the medium estimate.
func ReadingTimeForLength(length string) int {
	switch length {
	case StoryLengthShort:
		return 5
	case StoryLengthLong:
		return 15
	default:
		return 10
	}
}

// TargetWordsForLength maps a length preset to the word target given to the
// generator prompt.
func TargetWordsForLength(length string) int {
	switch length {
	case StoryLengthShort:
		return 300
	case StoryLengthLong:
		return 1000
	default:
		return 500
	}
}
