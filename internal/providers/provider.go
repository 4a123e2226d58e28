// Package providers contains clients for content-generation services.
package providers

import (
	"context"
	"time"
)

// Provider generates a model response from an ordered list of parts
// (images and text).
type Provider interface {
	Generate(ctx context.Context, parts []Part) (*GenerateResponse, error)
}

// ModelLister enumerates the models a provider exposes.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Config carries provider construction options.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	SystemInstruction string
	Timeout           time.Duration
}

// TextPart wraps prompt text as a request part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart wraps a base64-encoded image as a request part.
func ImagePart(mimeType, data string) Part {
	return Part{InlineData: &Blob{MIMEType: mimeType, Data: data}}
}
