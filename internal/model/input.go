package model

// Input is the text or image handed to the recognition engine.
type Input struct {
	Text      string
	Image     []byte
	ImageMIME string
}

// TextInput wraps raw text for classification.
func TextInput(text string) Input {
	return Input{Text: text}
}

// ImageInput wraps raw image bytes for classification.
func ImageInput(data []byte, mimeType string) Input {
	return Input{Image: data, ImageMIME: mimeType}
}

// IsImage reports whether the input carries image bytes.
func (in Input) IsImage() bool {
	return len(in.Image) > 0
}
