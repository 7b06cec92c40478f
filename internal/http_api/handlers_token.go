package http_api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/core-coin/tokenforge/internal/models"
)

// ValidateResponse is the real-time validation result of a draft.
type ValidateResponse struct {
	Valid         bool              `json:"valid"`
	Errors        map[string]string `json:"errors,omitempty"`
	SubmitEnabled bool              `json:"submitEnabled"`
}

// SubmitResponse is returned after the token API accepted a draft.
type SubmitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TokenAddress string `json:"tokenAddress,omitempty"`
}

// ConnectResponse is returned after a successful wallet connection.
type ConnectResponse struct {
	Success bool   `json:"success"`
	Address string `json:"address"`
}

func (s *HTTPServer) tokenForm(c *gin.Context) {
	c.JSON(http.StatusOK, s.forge.TokenForm())
}

func (s *HTTPServer) validateToken(c *gin.Context) {
	var draft models.TokenDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	fields, enabled := s.forge.ValidateToken(draft)
	c.JSON(http.StatusOK, ValidateResponse{
		Valid:         len(fields) == 0,
		Errors:        fields,
		SubmitEnabled: enabled,
	})
}

func (s *HTTPServer) submitToken(c *gin.Context) {
	var draft models.TokenDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.forge.SubmitToken(c.Request.Context(), draft)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		Success:      true,
		Message:      "Token created successfully",
		TokenAddress: resp.TokenAddress,
	})
}

// selectImage expects a multipart form with the file in the "image" field.
func (s *HTTPServer) selectImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		badRequest(c, "failed to open image: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxImageBytes+1))
	if err != nil {
		badRequest(c, "failed to read image: "+err.Error())
		return
	}
	if int64(len(data)) > s.maxImageBytes {
		s.writeError(c, fmt.Errorf("%w: larger than %d bytes", models.ErrInvalidImage, s.maxImageBytes))
		return
	}

	preview, err := s.forge.SelectImage(header.Filename, data)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, preview)
}

func (s *HTTPServer) clearImage(c *gin.Context) {
	s.forge.ClearImage()
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) imagePreview(c *gin.Context) {
	meta, data, err := s.forge.ImagePreview(c.Param("ref"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, meta.ContentType, data)
}

func (s *HTTPServer) connectWallet(c *gin.Context) {
	address, err := s.forge.ConnectWallet(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConnectResponse{Success: true, Address: address})
}

func (s *HTTPServer) disconnectWallet(c *gin.Context) {
	s.forge.DisconnectWallet()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
