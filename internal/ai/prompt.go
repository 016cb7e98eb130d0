package ai

import (
	"fmt"
	"strings"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

const defaultChildAge = 6

// BuildStoryPrompt assembles the system and user prompts for one generation
// request. The reading level resolves request override -> profile -> intermediate.
func BuildStoryPrompt(profile *models.ChildProfile, req *models.GenerationRequest) (systemPrompt, userPrompt string) {
	age := defaultChildAge
	if profile.Age != nil {
		age = *profile.Age
	}

	readingLevel := models.ReadingLevelIntermediate
	if profile.ReadingLevel != nil && *profile.ReadingLevel != "" {
		readingLevel = *profile.ReadingLevel
	}
	if req.ReadingLevel != nil && *req.ReadingLevel != "" {
		readingLevel = *req.ReadingLevel
	}

	contentSafety := profile.ContentSafety
	if contentSafety == "" {
		contentSafety = models.DefaultContentSafety
	}

	wordCount := models.TargetWordsForLength(req.Length)

	systemPrompt = fmt.Sprintf(`You are a talented children's story writer who creates age-appropriate, engaging, and safe bedtime stories.
Your stories should be:
- Appropriate for a %d year old child
- Written at a %s reading level
- Safe and positive with %s content guidelines
- Approximately %d words long
- Engaging and imaginative with a clear beginning, middle, and end
- Include a gentle moral or lesson when appropriate`,
		age, readingLevel, contentSafety, wordCount)

	parts := []string{
		fmt.Sprintf("Write a bedtime story for %s.", profile.Name),
	}

	interests := append([]string{}, profile.Interests...)
	interests = append(interests, req.SpecialInterests...)
	if len(interests) > 0 {
		parts = append(parts, fmt.Sprintf("%s loves: %s.", profile.Name, strings.Join(interests, ", ")))
	}

	if req.Theme != nil && *req.Theme != "" {
		parts = append(parts, fmt.Sprintf("The story theme should be: %s.", *req.Theme))
	} else if len(profile.FavoriteThemes) > 0 {
		parts = append(parts, fmt.Sprintf("Choose from these favorite themes: %s.", strings.Join(profile.FavoriteThemes, ", ")))
	}

	if cc := req.CustomCharacter; cc != nil && cc.Name != "" {
		desc := fmt.Sprintf("The story must feature a character named %s", cc.Name)
		if cc.Appearance != "" {
			desc += fmt.Sprintf(" who looks like this: %s", cc.Appearance)
		}
		if cc.Personality != "" {
			desc += fmt.Sprintf(" and has this personality: %s", cc.Personality)
		}
		parts = append(parts, desc+".")
	}

	if len(req.MoralLessons) > 0 {
		parts = append(parts, fmt.Sprintf("Weave in these lessons: %s.", strings.Join(req.MoralLessons, ", ")))
	}

	if req.CustomPrompt != nil && *req.CustomPrompt != "" {
		parts = append(parts, fmt.Sprintf("Additional requirements: %s", *req.CustomPrompt))
	}

	parts = append(parts, `
Please format your response as:
TITLE: [Story Title]
---
[Story Content]`)

	userPrompt = strings.Join(parts, " ")
	return systemPrompt, userPrompt
}
