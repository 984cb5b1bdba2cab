// Package model defines the core domain models used throughout the application.
package model

// Category indicates what kind of code was recognized in a piece of text.
type Category string

const (
	// CategoryPickup represents a parcel pickup code issued by a locker or station.
	CategoryPickup Category = "取件码"
	// CategoryVerification represents a short numeric one-time code.
	CategoryVerification Category = "验证码"
	// CategoryOther represents text that carries no recognizable code.
	CategoryOther Category = "其他"
)

// ParseCategory maps a category label to a Category. Unrecognized or empty
// labels resolve to CategoryOther.
func ParseCategory(label string) Category {
	switch Category(label) {
	case CategoryPickup:
		return CategoryPickup
	case CategoryVerification:
		return CategoryVerification
	default:
		return CategoryOther
	}
}

// RecognitionResult is the outcome of classifying one input, from either the
// pattern tier or the AI tier.
type RecognitionResult struct {
	Category       Category
	Code           string
	Platform       string
	StationName    string
	StationAddress string
}
