package service

import (
	"context"
)

// VisionService is the port to the vision-inference capability. It returns
// free-form text; callers own parsing and validation.
type VisionService interface {
	GenerateFromImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error)
}
