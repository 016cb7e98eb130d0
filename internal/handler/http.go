package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/config"
	"github.com/RKBattleSLoth/DreamWeaver/internal/service"
)

// Handler wires the HTTP layer to the application services.
type Handler struct {
	authService    service.AuthService
	profileService service.ChildProfileService
	storyService   service.StoryService
	genService     service.GenerationService
	cfg            *config.Config
	logger         *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	profileService service.ChildProfileService,
	storyService service.StoryService,
	genService service.GenerationService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		profileService: profileService,
		storyService:   storyService,
		genService:     genService,
		cfg:            cfg,
		logger:         logger.Named("Handler"),
	}
}

// RegisterRoutes registers all application routes. rateLimit is applied to
// the unauthenticated auth endpoints and to story generation.
func (h *Handler) RegisterRoutes(router *gin.Engine, rateLimit gin.HandlerFunc) {
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", rateLimit, h.register)
		authGroup.POST("/login", rateLimit, h.login)
		authGroup.POST("/refresh", rateLimit, h.refresh)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
		authGroup.GET("/me", h.AuthMiddleware(), h.me)
	}

	protected := router.Group("/api")
	protected.Use(h.AuthMiddleware())
	{
		protected.POST("/child-profiles", h.createChildProfile)
		protected.GET("/child-profiles", h.listChildProfiles)
		protected.GET("/child-profiles/active", h.getActiveChildProfile)
		protected.GET("/child-profiles/:id", h.getChildProfile)
		protected.PUT("/child-profiles/:id", h.updateChildProfile)
		protected.DELETE("/child-profiles/:id", h.deleteChildProfile)
		protected.POST("/child-profiles/:id/activate", h.activateChildProfile)

		protected.POST("/stories", h.createStory)
		protected.GET("/stories", h.listStories)
		protected.GET("/stories/favorites", h.listFavoriteStories)
		protected.GET("/stories/:id", h.getStory)
		protected.PUT("/stories/:id", h.updateStory)
		protected.DELETE("/stories/:id", h.deleteStory)
		protected.POST("/stories/:id/favorite", h.toggleFavoriteStory)
		protected.POST("/stories/:id/read", h.markStoryAsRead)

		protected.POST("/generate-story", rateLimit, h.generateStory)
		protected.GET("/generate-story/:id/status", h.generationStatus)
	}
}
