package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// generateStory accepts a generation request and returns 202 Accepted with
// the request id. Clients poll generationStatus until a terminal state.
func (h *Handler) generateStory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var req generateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	genReq := &models.GenerationRequest{
		Theme:            req.Theme,
		Length:           req.Length,
		CustomPrompt:     req.CustomPrompt,
		ReadingLevel:     req.ReadingLevel,
		SpecialInterests: req.SpecialInterests,
		MoralLessons:     req.MoralLessons,
		CustomCharacter:  req.CustomCharacter,
	}
	if req.ChildProfileID != nil {
		genReq.ChildProfileID = *req.ChildProfileID
	}

	submitted, err := h.genService.Submit(c.Request.Context(), userID, genReq)
	if err != nil {
		generationSubmissionsTotal.WithLabelValues("rejected").Inc()
		handleServiceError(c, err)
		return
	}

	generationSubmissionsTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusAccepted, models.OK(generateStoryResponse{
		RequestID: submitted.ID,
		Status:    submitted.Status,
	}))
}

func (h *Handler) generationStatus(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid request ID")
		return
	}

	req, err := h.genService.Status(c.Request.Context(), userID, requestID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(generationStatusResponse{
		RequestID:    req.ID,
		Status:       req.Status,
		StoryID:      req.StoryID,
		ErrorMessage: req.ErrorMessage,
	}))
}
