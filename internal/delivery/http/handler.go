package http

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketai/backend/config"
	"github.com/pocketai/backend/internal/domain"
	"github.com/pocketai/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service   *usecase.RecommendationService
	uploadDir string
	maxUpload int64
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.RecommendationService, uploadCfg config.UploadConfig) *Handler {
	return &Handler{
		service:   service,
		uploadDir: uploadCfg.Dir,
		maxUpload: uploadCfg.MaxSizeMB * 1024 * 1024,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Chat handles general conversation with the shopping assistant
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recommend handles product recommendation requests based on text queries
func (h *Handler) Recommend(c *gin.Context) {
	var req domain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	resp, err := h.service.RecommendByQuery(c.Request.Context(), req.SessionID, req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] Recommendation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Recommendation service error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ImageSearch finds up to 3 catalog products matching an uploaded image
func (h *Handler) ImageSearch(c *gin.Context) {
	imagePath, cleanup, err := h.saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	resp, err := h.service.ImageSearch(c.Request.Context(), c.PostForm("sessionId"), imagePath)
	if err != nil {
		log.Printf("[HTTP] Image search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Image search error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductMatch finds the single best catalog product for an uploaded image
// using the local heuristic matcher
func (h *Handler) ProductMatch(c *gin.Context) {
	imagePath, cleanup, err := h.saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	resp, err := h.service.ProductMatch(c.Request.Context(), c.PostForm("sessionId"), imagePath)
	if err != nil {
		log.Printf("[HTTP] Product matcher error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Product matcher error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// saveUpload stores the request's image part under a unique name and
// returns the path together with a cleanup func removing it afterwards.
func (h *Handler) saveUpload(c *gin.Context) (string, func(), error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil, fmt.Errorf("no image file uploaded")
	}
	if file.Size > h.maxUpload {
		return "", nil, fmt.Errorf("image exceeds maximum upload size")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	path := filepath.Join(h.uploadDir, uniqueFilename(file))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", nil, fmt.Errorf("failed to save upload: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[HTTP] Error removing file %s: %v", path, err)
		}
	}
	return path, cleanup, nil
}

// uniqueFilename builds a timestamped, collision-free name preserving the
// upload's extension.
func uniqueFilename(file *multipart.FileHeader) string {
	timestamp := time.Now().Format("20060102_150405")
	shortID := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s%s", timestamp, shortID, filepath.Ext(file.Filename))
}
