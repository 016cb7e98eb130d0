package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func (h *Handler) createChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var req createChildProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile := &models.ChildProfile{
		Name:              req.Name,
		Age:               req.Age,
		Grade:             req.Grade,
		Interests:         req.Interests,
		FavoriteThemes:    req.FavoriteThemes,
		ReadingLevel:      req.ReadingLevel,
		ContentSafety:     req.ContentSafety,
		PreferredArtStyle: req.PreferredArtStyle,
		AvatarURL:         req.AvatarURL,
	}

	created, err := h.profileService.Create(c.Request.Context(), userID, profile)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.OK(created))
}

func (h *Handler) listChildProfiles(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	profiles, err := h.profileService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(profiles))
}

func (h *Handler) getActiveChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	profile, err := h.profileService.GetActive(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(profile))
}

func (h *Handler) getChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid profile ID")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(profile))
}

func (h *Handler) updateChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid profile ID")
		return
	}

	var req updateChildProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, profileID, models.ChildProfileUpdate{
		Name:              req.Name,
		Age:               req.Age,
		Grade:             req.Grade,
		Interests:         req.Interests,
		FavoriteThemes:    req.FavoriteThemes,
		ReadingLevel:      req.ReadingLevel,
		ContentSafety:     req.ContentSafety,
		PreferredArtStyle: req.PreferredArtStyle,
		AvatarURL:         req.AvatarURL,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(profile))
}

func (h *Handler) deleteChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid profile ID")
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), userID, profileID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(gin.H{"message": "Profile deleted"}))
}

func (h *Handler) activateChildProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid profile ID")
		return
	}

	profile, err := h.profileService.SetActive(c.Request.Context(), userID, profileID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(profile))
}
