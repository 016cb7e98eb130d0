package models

import (
	"time"

	"github.com/google/uuid"
)

// Reading levels supported by the generator prompt.
const (
	ReadingLevelBeginner     = "beginner"
	ReadingLevelIntermediate = "intermediate"
	ReadingLevelAdvanced     = "advanced"
)

// Defaults applied when a profile does not specify them.
const (
	DefaultContentSafety = "strict"
	DefaultArtStyle      = "watercolor"
)

// ChildProfile describes a child a parent generates stories for.
// At most one profile per user is active at a time; the active profile is the
// default target for story generation.
type ChildProfile struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            uuid.UUID `db:"user_id" json:"userId"`
	Name              string    `db:"name" json:"name"`
	Age               *int      `db:"age" json:"age,omitempty"`
	Grade             *string   `db:"grade" json:"grade,omitempty"`
	Interests         []string  `db:"interests" json:"interests"`
	FavoriteThemes    []string  `db:"favorite_themes" json:"favoriteThemes"`
	ReadingLevel      *string   `db:"reading_level" json:"readingLevel,omitempty"`
	ContentSafety     string    `db:"content_safety" json:"contentSafety"`
	PreferredArtStyle string    `db:"preferred_art_style" json:"preferredArtStyle"`
	AvatarURL         *string   `db:"avatar_url" json:"avatarUrl,omitempty"`
	IsActive          bool      `db:"is_active" json:"isActive"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// ChildProfileUpdate carries the optional fields of a partial profile update.
// Nil pointers (and nil slices) leave the stored value untouched.
type ChildProfileUpdate struct {
	Name              *string
	Age               *int
	Grade             *string
	Interests         []string
	FavoriteThemes    []string
	ReadingLevel      *string
	ContentSafety     *string
	PreferredArtStyle *string
	AvatarURL         *string
}

// IsValidReadingLevel reports whether the given value is a known reading level.
func IsValidReadingLevel(level string) bool {
	switch level {
	case ReadingLevelBeginner, ReadingLevelIntermediate, ReadingLevelAdvanced:
		return true
	}
	return false
}
