package handler

import (
	"io"
	"net/http"
	"strings"

	"vehiql/internal/usecase"
	"vehiql/pkg/errors"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
)

const maxImageBytes = 10 << 20 // 10 MB

type ImageSearchHandler struct {
	imageSearchUseCase *usecase.ImageSearchUseCase
}

func NewImageSearchHandler(imageSearchUseCase *usecase.ImageSearchUseCase) *ImageSearchHandler {
	return &ImageSearchHandler{imageSearchUseCase: imageSearchUseCase}
}

// Extract accepts a multipart image upload and returns the structured
// attribute set. The route sits behind the rate gate; this handler never
// retries the inference call.
func (h *ImageSearchHandler) Extract(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("An image file is required", err))
	}
	if fileHeader.Size > maxImageBytes {
		return response.Error(c, errors.BadRequest("Image must be smaller than 10 MB", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded image", err))
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded image", err))
	}
	if len(imageData) > maxImageBytes {
		return response.Error(c, errors.BadRequest("Image must be smaller than 10 MB", nil))
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(imageData)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return response.Error(c, errors.BadRequest("Uploaded file must be an image", nil))
	}

	mode := usecase.ExtractionMode(c.QueryParam("mode"))
	if mode == "" {
		mode = usecase.ModeSearch
	}

	attrs, err := h.imageSearchUseCase.Extract(c.Request().Context(), imageData, mimeType, mode)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, attrs)
}
