package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func (h *Handler) createStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	story := &models.Story{
		Title:          req.Title,
		Content:        req.Content,
		ChildProfileID: req.ChildProfileID,
		Theme:          req.Theme,
		CharacterName:  req.CharacterName,
		Length:         req.Length,
		MoralLessons:   req.MoralLessons,
	}

	created, err := h.storyService.Create(c.Request.Context(), userID, story)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.OK(created))
}

func (h *Handler) listStories(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	stories, err := h.storyService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(stories))
}

func (h *Handler) listFavoriteStories(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	stories, err := h.storyService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(stories))
}

func (h *Handler) getStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story ID")
		return
	}

	story, err := h.storyService.Get(c.Request.Context(), userID, storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(story))
}

func (h *Handler) updateStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story ID")
		return
	}

	var req updateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	story, err := h.storyService.Update(c.Request.Context(), userID, storyID, models.StoryUpdate{
		Title:         req.Title,
		Content:       req.Content,
		Theme:         req.Theme,
		CharacterName: req.CharacterName,
		MoralLessons:  req.MoralLessons,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(story))
}

func (h *Handler) deleteStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story ID")
		return
	}

	if err := h.storyService.Delete(c.Request.Context(), userID, storyID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(gin.H{"message": "Story deleted"}))
}

func (h *Handler) toggleFavoriteStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story ID")
		return
	}

	story, err := h.storyService.ToggleFavorite(c.Request.Context(), userID, storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(story))
}

func (h *Handler) markStoryAsRead(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story ID")
		return
	}

	story, err := h.storyService.MarkAsRead(c.Request.Context(), userID, storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(story))
}
