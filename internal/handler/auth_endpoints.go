package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	h.logger.Info("User registered", zap.String("userID", user.ID.String()))
	c.JSON(http.StatusCreated, models.OK(gin.H{
		"user": meResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		"tokens": tokens,
	}))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(tokens))
}

// logout revokes the caller's access token and, when a refresh token is
// supplied in the body, its refresh counterpart. The refresh token signature
// is not re-verified here; only its jti is needed to delete the Redis entry.
func (h *Handler) logout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	accessUUID := c.GetString(contextAccessUUIDKey)

	var refreshUUID string
	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		claims := &models.Claims{}
		if _, _, err := new(jwt.Parser).ParseUnverified(req.RefreshToken, claims); err == nil {
			refreshUUID = claims.ID
		} else {
			h.logger.Warn("Unparseable refresh token on logout", zap.Error(err))
		}
	}

	if err := h.authService.Logout(c.Request.Context(), userID, accessUUID, refreshUUID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(gin.H{"message": "Successfully logged out"}))
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		tokenVerificationsTotal.WithLabelValues("refresh", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	tokenVerificationsTotal.WithLabelValues("refresh", "success").Inc()
	c.JSON(http.StatusOK, models.OK(tokens))
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(meResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}))
}
