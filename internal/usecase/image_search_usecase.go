package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"vehiql/internal/domain/service"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"
)

// ExtractionMode selects how much of the attribute set is required.
// Search-only flows need just enough to build a filter; listing creation
// needs the full set.
type ExtractionMode string

const (
	ModeSearch  ExtractionMode = "search"
	ModeListing ExtractionMode = "listing"
)

var requiredFields = map[ExtractionMode][]string{
	ModeSearch:  {"make", "bodyType", "color", "confidence"},
	ModeListing: {"make", "model", "year", "color", "price", "mileage", "bodyType", "fuelType", "transmission", "description", "confidence"},
}

const searchPrompt = `
Analyze this car image and extract the following information for a search query:
1. Make (manufacturer)
2. Body type (SUV, Sedan, Hatchback, etc.)
3. Color

Format your response as a clean JSON object with these fields:
{
  "make": "",
  "bodyType": "",
  "color": "",
  "confidence": 0.0
}

For confidence, provide a value between 0 and 1 representing how confident you are in your overall identification.
Only respond with the JSON object, nothing else.
`

const listingPrompt = `
Analyze this car image and extract the following information:
1. Make (manufacturer)
2. Model
3. Year (approximately)
4. Color
5. Body type (SUV, Sedan, Hatchback, etc.)
6. Mileage (your best guess)
7. Fuel type (your best guess)
8. Transmission type (your best guess)
9. Price (your best guess)
10. Short description suitable for a car listing

Format your response as a clean JSON object with these fields:
{
  "make": "",
  "model": "",
  "year": 0000,
  "color": "",
  "price": "",
  "mileage": "",
  "bodyType": "",
  "fuelType": "",
  "transmission": "",
  "description": "",
  "confidence": 0.0
}

For confidence, provide a value between 0 and 1 representing how confident you are in your overall identification.
Only respond with the JSON object, nothing else.
`

// ExtractedAttributes is the validated structured attribute set. Price and
// mileage arrive as free-form strings from the model ("$15,000", "~40k mi").
type ExtractedAttributes struct {
	Make         string  `json:"make"`
	Model        string  `json:"model,omitempty"`
	Year         int     `json:"year,omitempty"`
	Color        string  `json:"color"`
	Price        string  `json:"price,omitempty"`
	Mileage      string  `json:"mileage,omitempty"`
	BodyType     string  `json:"bodyType"`
	FuelType     string  `json:"fuelType,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Description  string  `json:"description,omitempty"`
	Confidence   float64 `json:"confidence"`
}

type ImageSearchUseCase struct {
	vision service.VisionService
}

func NewImageSearchUseCase(vision service.VisionService) *ImageSearchUseCase {
	return &ImageSearchUseCase{vision: vision}
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\n?")

func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// Extract submits the image to the vision capability exactly once and
// validates the response against the mode's required field set. Upstream
// failures, unparseable output and missing fields each come back as their
// own error kind; nothing is retried here.
func (u *ImageSearchUseCase) Extract(ctx context.Context, imageData []byte, mimeType string, mode ExtractionMode) (*ExtractedAttributes, error) {
	if len(imageData) == 0 {
		return nil, errors.BadRequest("image is required", nil)
	}

	required, ok := requiredFields[mode]
	if !ok {
		return nil, errors.BadRequest("unknown extraction mode", nil)
	}

	prompt := searchPrompt
	if mode == ModeListing {
		prompt = listingPrompt
	}

	rawText, err := u.vision.GenerateFromImage(ctx, imageData, mimeType, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(rawText)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		logger.Warn("Vision response is not valid JSON: %v", err)
		return nil, errors.MalformedResponse("Failed to parse AI response", rawText)
	}

	var missing []string
	for _, field := range required {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, errors.IncompleteResponse("AI response is missing required fields", missing)
	}

	var attrs ExtractedAttributes
	if err := json.Unmarshal([]byte(cleaned), &attrs); err != nil {
		return nil, errors.MalformedResponse("AI response has unexpected field types", rawText)
	}

	return &attrs, nil
}
