package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stored recognition record.
type Item struct {
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	ID             string
	Code           string
	OriginalText   string
	Platform       string
	StationName    string
	StationAddress string
	Category       Category
	Used           bool
}

// NewItem builds a storable Item from a recognition result and the raw input
// it was derived from.
func NewItem(result RecognitionResult, originalText string) Item {
	return Item{
		ID:             uuid.NewString(),
		Code:           result.Code,
		OriginalText:   originalText,
		Category:       result.Category,
		Platform:       result.Platform,
		StationName:    result.StationName,
		StationAddress: result.StationAddress,
		CreatedAt:      time.Now(),
	}
}
