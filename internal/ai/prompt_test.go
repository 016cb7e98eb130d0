package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildStoryPrompt_Defaults(t *testing.T) {
	profile := &models.ChildProfile{Name: "Mia"}
	req := &models.GenerationRequest{Length: models.StoryLengthMedium}

	system, user := BuildStoryPrompt(profile, req)

	assert.Contains(t, system, "a 6 year old child")
	assert.Contains(t, system, "intermediate reading level")
	assert.Contains(t, system, "strict content guidelines")
	assert.Contains(t, system, "Approximately 500 words")

	assert.Contains(t, user, "Write a bedtime story for Mia.")
	assert.Contains(t, user, "TITLE: [Story Title]")
	assert.NotContains(t, user, "loves:")
	assert.NotContains(t, user, "theme")
}

func TestBuildStoryPrompt_ProfileFields(t *testing.T) {
	profile := &models.ChildProfile{
		Name:           "Theo",
		Age:            intPtr(9),
		ReadingLevel:   strPtr(models.ReadingLevelAdvanced),
		ContentSafety:  "moderate",
		Interests:      []string{"dinosaurs", "space"},
		FavoriteThemes: []string{"adventure", "friendship"},
	}
	req := &models.GenerationRequest{Length: models.StoryLengthLong}

	system, user := BuildStoryPrompt(profile, req)

	assert.Contains(t, system, "a 9 year old child")
	assert.Contains(t, system, "advanced reading level")
	assert.Contains(t, system, "moderate content guidelines")
	assert.Contains(t, system, "Approximately 1000 words")

	assert.Contains(t, user, "Theo loves: dinosaurs, space.")
	assert.Contains(t, user, "Choose from these favorite themes: adventure, friendship.")
}

func TestBuildStoryPrompt_RequestOverrides(t *testing.T) {
	profile := &models.ChildProfile{
		Name:           "Ava",
		ReadingLevel:   strPtr(models.ReadingLevelBeginner),
		FavoriteThemes: []string{"pirates"},
	}
	req := &models.GenerationRequest{
		Length:           models.StoryLengthShort,
		Theme:            strPtr("underwater kingdom"),
		ReadingLevel:     strPtr(models.ReadingLevelIntermediate),
		SpecialInterests: []string{"mermaids"},
		MoralLessons:     []string{"sharing", "bravery"},
		CustomPrompt:     strPtr("End the story with a lullaby."),
		CustomCharacter: &models.CustomCharacter{
			Name:        "Captain Bubbles",
			Appearance:  "a small seahorse with a golden mane",
			Personality: "kind but easily startled",
		},
	}

	system, user := BuildStoryPrompt(profile, req)

	// Explicit request reading level wins over the profile's.
	assert.Contains(t, system, "intermediate reading level")
	assert.Contains(t, system, "Approximately 300 words")

	assert.Contains(t, user, "The story theme should be: underwater kingdom.")
	assert.NotContains(t, user, "pirates")
	assert.Contains(t, user, "Ava loves: mermaids.")
	assert.Contains(t, user, "a character named Captain Bubbles")
	assert.Contains(t, user, "a small seahorse with a golden mane")
	assert.Contains(t, user, "kind but easily startled")
	assert.Contains(t, user, "Weave in these lessons: sharing, bravery.")
	assert.Contains(t, user, "Additional requirements: End the story with a lullaby.")
}
