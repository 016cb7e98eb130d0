package images

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/config"
)

// ErrImageGenerationFailed is returned when the image server could not
// produce an illustration.
var ErrImageGenerationFailed = errors.New("image generation failed")

// ErrImageSaveFailed is returned when the generated file could not be written.
var ErrImageSaveFailed = errors.New("image save failed")

// CoverService generates a cover illustration for a finished story and
// returns its public URL.
type CoverService interface {
	GenerateCover(ctx context.Context, storyID uuid.UUID, title, artStyle string) (string, error)
}

type coverServiceImpl struct {
	logger        *zap.Logger
	client        *http.Client
	serverURL     string
	imageSavePath string
	imageBaseURL  string
}

// NewCoverService creates a CoverService backed by an HTTP image server.
func NewCoverService(cfg *config.Config, logger *zap.Logger) (CoverService, error) {
	if cfg.ImageSavePath == "" {
		return nil, errors.New("image save path (IMAGE_SAVE_PATH) is not configured")
	}
	if cfg.ImagePublicBaseURL == "" {
		return nil, errors.New("image public base URL (IMAGE_PUBLIC_BASE_URL) is not configured")
	}

	return &coverServiceImpl{
		logger:        logger.Named("CoverService"),
		client:        &http.Client{Timeout: cfg.ImageServerTimeout},
		serverURL:     strings.TrimSuffix(cfg.ImageServerURL, "/"),
		imageSavePath: cfg.ImageSavePath,
		imageBaseURL:  strings.TrimSuffix(cfg.ImagePublicBaseURL, "/"),
	}, nil
}

type imageAPIRequest struct {
	Prompt string `json:"prompt"`
	Ratio  string `json:"ratio"`
}

// GenerateCover asks the image server for an illustration, writes the JPEG
// under the configured directory and returns the public URL.
func (s *coverServiceImpl) GenerateCover(ctx context.Context, storyID uuid.UUID, title, artStyle string) (string, error) {
	log := s.logger.With(zap.String("storyID", storyID.String()))
	log.Info("Generating story cover illustration")

	prompt := fmt.Sprintf("A children's book cover illustration for a bedtime story titled %q, %s style, warm and cozy, no text", title, artStyle)
	log.Debug("Cover prompt", zap.String("prompt", prompt))

	imageData, err := s.callImageAPI(ctx, prompt)
	if err != nil {
		log.Error("Image server call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
	}
	if len(imageData) == 0 {
		log.Error("Image server returned empty image data")
		return "", fmt.Errorf("%w: empty response body", ErrImageGenerationFailed)
	}
	log.Info("Image data received", zap.Int("sizeBytes", len(imageData)))

	fileName := fmt.Sprintf("%s.jpg", storyID)
	filePath := filepath.Join(s.imageSavePath, fileName)

	if err := os.WriteFile(filePath, imageData, 0644); err != nil {
		log.Error("Failed to save cover image", zap.String("path", filePath), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrImageSaveFailed, err)
	}
	log.Info("Cover image saved", zap.String("path", filePath))

	imageURL := s.imageBaseURL + "/" + fileName
	log.Info("Public cover URL generated", zap.String("url", imageURL))
	return imageURL, nil
}

func (s *coverServiceImpl) callImageAPI(ctx context.Context, prompt string) ([]byte, error) {
	reqBodyBytes, err := json.Marshal(imageAPIRequest{Prompt: prompt, Ratio: "2:3"})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	endpointURL := s.serverURL + "/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(reqBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image server returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}
	return bodyBytes, nil
}
